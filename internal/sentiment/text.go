package sentiment

// Text is the classifier input. It holds either a string or a marker for a
// value of some other type; only the classifier decides what to do with the
// latter.
type Text struct {
	value    string
	isString bool
}

func StringText(s string) Text {
	return Text{value: s, isString: true}
}

func NonStringText() Text {
	return Text{}
}

func (t Text) AsString() (string, bool) {
	return t.value, t.isString
}
