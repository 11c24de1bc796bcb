package nominatim

import "time"

const (
	// DefaultBaseURL публичный сервер Nominatim
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	// MinQueryLength минимальная длина строки поиска
	MinQueryLength = 3

	// MaxSuggestions количество подсказок, возвращаемых клиенту
	MaxSuggestions = 5
)

// Config параметры клиента
type Config struct {
	BaseURL           string
	UserAgent         string
	RequestsPerSecond float64 // политика Nominatim: не более 1 запроса в секунду
	Timeout           time.Duration
	CountryCodes      string    // например "us"
	ViewBox           []float64 // left, top, right, bottom; пусто = без ограничения
	State             string    // штат, подставляемый в отформатированный адрес
	Limit             int       // сколько результатов запрашивать у Nominatim
}

// Address найденный адрес
type Address struct {
	PlaceID     int64  `json:"placeId"`
	DisplayName string `json:"displayName"` // "123 Main St, Riverside, CA 92501"
	HouseNumber string `json:"houseNumber,omitempty"`
	Road        string `json:"road,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// place модель результата Nominatim (format=json, addressdetails=1)
type place struct {
	PlaceID     int64          `json:"place_id"`
	Lat         string         `json:"lat"`
	Lon         string         `json:"lon"`
	DisplayName string         `json:"display_name"`
	Address     *addressDetail `json:"address"`
	Error       string         `json:"error,omitempty"`
}

type addressDetail struct {
	HouseNumber string `json:"house_number"`
	Road        string `json:"road"`
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	Hamlet      string `json:"hamlet"`
	Postcode    string `json:"postcode"`
	State       string `json:"state"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
