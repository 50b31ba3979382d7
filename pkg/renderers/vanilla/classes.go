package vanilla

// ChromeClass is a semantic CSS class emitted by the templates.
type ChromeClass string

const (
	ClassForm    ChromeClass = "payforms-form"
	ClassSection ChromeClass = "payforms-section"
	ClassField   ChromeClass = "payforms-field"
	ClassText    ChromeClass = "payforms-text"
	ClassMandate ChromeClass = "payforms-mandate"
	ClassErrors  ChromeClass = "payforms-errors"
	ClassActions ChromeClass = "payforms-actions"
)

func chromeClasses() map[string]string {
	return map[string]string{
		"form":    string(ClassForm),
		"section": string(ClassSection),
		"field":   string(ClassField),
		"text":    string(ClassText),
		"mandate": string(ClassMandate),
		"errors":  string(ClassErrors),
		"actions": string(ClassActions),
	}
}
