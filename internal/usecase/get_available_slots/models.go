package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	Days int        // Количество дней начиная с сегодняшнего (0 = все окно записи)
	Date *time.Time // Конкретная дата (опционально), тогда Days игнорируется
}

// Response модель ответа со списком доступных дат и времени
type Response struct {
	WindowDays int   // Размер окна записи в днях
	Days       []Day // Даты в хронологическом порядке
}

// Day дата записи со списком временных слотов
type Day struct {
	Date  time.Time // Дата (полночь UTC)
	Title string    // "Tue, Oct 20"
	Slots []string  // Метки времени, например "09:00 AM"
}
