package i18n

// Translator resolves a localized string by key, returning fallback when the
// key has no translation.
type Translator interface {
	T(key, fallback string) string
}

type noop struct{}

// Noop returns every fallback unchanged.
func Noop() Translator {
	return noop{}
}

func (noop) T(_ string, fallback string) string {
	return fallback
}

// OrNoop guards against a nil translator.
func OrNoop(tr Translator) Translator {
	if tr == nil {
		return Noop()
	}
	return tr
}
