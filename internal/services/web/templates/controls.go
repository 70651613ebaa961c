package templates

// HTMXAttrs carries the htmx request attributes attached to a form control.
type HTMXAttrs struct {
	Post    string
	Trigger string
	Swap    string
}

// ButtonView describes a button control.
type ButtonView struct {
	ID       string
	Type     string
	Label    string
	Class    string
	Disabled bool
	// Busy marks the button as waiting on an in-flight request.
	Busy bool
	// OOB renders the button as an htmx out-of-band swap target.
	OOB bool
}

func (v ButtonView) buttonType() string {
	if v.Type == "" {
		return "button"
	}
	return v.Type
}

func (v ButtonView) className() string {
	if v.Class == "" {
		return "button"
	}
	return "button " + v.Class
}

// InputView describes a text input with its validation message.
type InputView struct {
	Name        string
	Type        string
	Placeholder string
	Value       string
	Error       string
	HTMX        HTMXAttrs
}

// ErrorID returns the id of the element holding the input's error message.
func (v InputView) ErrorID() string {
	return "error-" + v.Name
}

func (v InputView) inputID() string {
	return "input-" + v.Name
}

func (v InputView) inputType() string {
	if v.Type == "" {
		return "text"
	}
	return v.Type
}

func (v InputView) className() string {
	if v.Error != "" {
		return "input input-error"
	}
	return "input"
}
