package create_booking

import "errors"

var (
	// ErrNameRequired возвращается, когда не указано имя клиента
	ErrNameRequired = errors.New("create_booking: client name is required")

	// ErrPhoneRequired возвращается, когда не указан телефон клиента
	ErrPhoneRequired = errors.New("create_booking: client phone is required")

	// ErrEmailRequired возвращается, когда не указан email клиента
	ErrEmailRequired = errors.New("create_booking: client email is required")

	// ErrEmailInvalid возвращается при синтаксически некорректном email
	ErrEmailInvalid = errors.New("create_booking: client email is invalid")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrOutsideWorkHours возвращается, когда слот вне рабочих часов
	// (нерабочий день либо час вне окна открытия-закрытия)
	ErrOutsideWorkHours = errors.New("create_booking: slot is outside work hours")

	// ErrLunchBreak возвращается, когда слот попадает на обеденный перерыв
	ErrLunchBreak = errors.New("create_booking: slot falls on lunch break")

	// ErrSlotNotAvailable возвращается, когда слот занят существующим событием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrTooLateToBook возвращается, когда слот нарушает правило lead time
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
