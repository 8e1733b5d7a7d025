package model

// FilePath represents a file system path.
type FilePath string

// Element is one <path> element of a document.
type Element struct {
	Index int    // position among the document's path elements
	ID    string // id attribute, may be empty
	Data  string // raw d attribute
}

// Document is a loaded vector document reduced to what the flattener needs.
type Document struct {
	Source   FilePath
	Width    string
	Height   string
	ViewBox  string
	Elements []Element
}
