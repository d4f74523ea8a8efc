package diag

// Category classifies how a diagnostic should be treated by consumers.
type Category uint8

const (
	// CatWarning flags suspicious but accepted input.
	CatWarning Category = iota
	// CatError flags input that cannot be accepted.
	CatError
	CatSuggestion
	CatMessage
)

func (c Category) String() string {
	switch c {
	case CatWarning:
		return "warning"
	case CatError:
		return "error"
	case CatSuggestion:
		return "suggestion"
	case CatMessage:
		return "message"
	}
	return "unknown"
}
