package negotiation

import "errors"

var (
	// ErrConfiguration: нет персоны для vibe. Ошибка программиста.
	ErrConfiguration = errors.New("negotiation: configuration error")
	// ErrParse: в ответе нет разбираемого JSON-объекта.
	ErrParse = errors.New("negotiation: parse error")
	// ErrSchema: JSON есть, но не хватает полей под isValid.
	ErrSchema = errors.New("negotiation: schema error")
)

// GenericFailureMessage: единственное, что видит пользователь при Failed.
const GenericFailureMessage = "Failed to generate a negotiation plan. Please try again later."
