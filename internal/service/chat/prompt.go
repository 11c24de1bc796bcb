package chat

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

type answer struct {
	Topic string
	Text  string
}

var knowledgeBase = []answer{
	{"Swirl Marks", "It just depends on how deep they are. You can try sending pictures, but the lighting needs to be right, and even then it's still hard to tell. I would probably have to do a visual inspection to really tell you which ones I would be able to take care of and which ones I wouldn't."},
	{"Leather Care", "If you want, I can show you the products I use when I arrive. We can even spot test a small area together so you can make sure it works for your interior specifically."},
	{"Dog Hair", "Yes, but there will be an additional charge depending on how bad it is. We can go through it when I arrive."},
	{"Teslas/EVs", "Majority of the vehicles I wash are EV nowadays. I've learned how to specially handle these cars."},
	{"Rain Policy", "I'm usually checking different weather reports, so if I see any chance of rain near your appointment, I'll let you know and you can decide what you want to do."},
	{"Odors", "I can deep clean the interior and treat odors. If the smell is trapped in the carpet or seats, I can target those areas."},
	{"Spilled Milk", "I can remove the milk residue and treat the area to eliminate the odor. Milk spills usually require a deep extraction."},
	{"Sand", "Sand takes longer to remove, so there may be a small additional charge depending on how heavy it is."},
	{"Same Day Service", "I can check my schedule for same day openings. If I have a slot, I can get you in today."},
	{"Water/Power", "Yes, I am fully self contained with my own water and power."},
	{"Apartments", "I can work in most apartments as long as there are no restrictions against mobile services and I have room to park."},
	{"Duration", "Most full details take between two to four hours depending on the condition and the services selected."},
	{"Why Expensive?", "Detailing is a detailed process that uses professional products, equipment, and techniques to protect and restore your car. It takes time and skill to do it safely."},
	{"Cash Discount?", "My prices stay the same regardless of payment method to keep everything consistent and fair."},
	{"Discounts?", "I occasionally run specials and maintenance plans. If any promotions are active, I can let you know."},
	{"Nervous/Previous Damage", "I understand the concern. I use safe wash methods, clean microfiber towels, and proper techniques to protect the paint. I can walk you through the process if you'd like."},
	{"Engine Bay Safety", "I use low moisture and controlled cleaning for engine bays. Sensitive areas are covered or avoided. It's a safe process."},
	{"Refunds?", "I always aim for complete satisfaction. If something isn't right, I'll address it and make sure we find a solution."},
	{"Car Wash Scratches", "I can remove many light scratches through machine polishing. Deeper scratches may improve but not fully disappear."},
	{"Cloudy Headlights", "Yes, I can restore headlights through sanding, polishing, and a UV protectant so they stay clear."},
	{"Ceramic Coating Care", "I use coating safe soaps, soft mitts, and techniques that preserve the hydrophobic layer. No harsh chemicals."},
	{"Wax vs Sealant", "Wax gives a warm shine but doesn't last long. Sealants last longer and offer better protection."},
	{"Quick Service?", "A quality wash takes longer than ten minutes, but I can get you in for the fastest safe service available."},
	{"Vomit", "Yes, I can deep clean and remove the residue. Vomit requires extraction and sanitizing."},
	{"Trunk Items", "Yes, but I'll need you to remove personal items before I start so I can clean properly."},
}

// ReferralPhrase фраза, с которой ассистент отвечает на вопросы, требующие осмотра автомобиля
func ReferralPhrase(b Business) string {
	return fmt.Sprintf("For something this specific, %s can give you a faster and more accurate answer if you call or text them directly at %s. If you want to keep chatting here though, I can still help.",
		b.OwnerName, b.Phone)
}

// BuildSystemPrompt собирает системную инструкцию из сведений о бизнесе и каталога
func BuildSystemPrompt(b Business, services []domain.ServicePackage) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are the AI assistant for **%s**.\n", b.Name)
	sb.WriteString("Your goal is to be helpful, clear, and professional, like a polite assistant who knows detailing but never pressures the customer.\n\n")

	sb.WriteString("**CORE TONE RULES:**\n")
	sb.WriteString("- Calm, clear, human, straightforward.\n")
	sb.WriteString("- Professional and friendly, but not overly casual.\n")
	sb.WriteString("- NEVER salesy or pushy. Do not upsell, suggest upgrades, or use hype language.\n")
	sb.WriteString("- Honest: give simple, real answers.\n\n")

	sb.WriteString("**CRITICAL REFERRAL RULE:**\n")
	sb.WriteString("If a customer asks a question that requires seeing the car (depth of scratches, stain severity, odor diagnosis, specific damage), you MUST reply with this EXACT phrase before answering:\n")
	fmt.Fprintf(&sb, "*\"%s\"*\n", ReferralPhrase(b))
	sb.WriteString("If the question is simple (pricing, timing, pet hair, apartment access, rain), DO NOT use the referral phrase. Just answer normally.\n\n")

	sb.WriteString("**KNOWLEDGE BASE (Q&A PAIRS):**\n")
	for i, a := range knowledgeBase {
		fmt.Fprintf(&sb, "%d. **%s:** \"%s\"\n", i+1, a.Topic, a.Text)
	}
	sb.WriteString("\n")

	sb.WriteString("**SERVICE MENU (for reference only, do not upsell):**\n")
	for _, s := range services {
		fmt.Fprintf(&sb, "- %s: Starting at %s\n", s.Title, domain.FormatCents(s.DefaultPrice))
	}
	sb.WriteString("\n")

	sb.WriteString("**FINAL REMINDERS:**\n")
	sb.WriteString("- Keep answers concise (under 3 sentences).\n")
	sb.WriteString("- Do not use emojis unless the user uses them first.\n")
	sb.WriteString("- Be helpful, not salesy.\n")

	return sb.String()
}
