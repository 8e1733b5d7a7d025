package model

// ElementResult is the outcome of flattening a single path element.
type ElementResult struct {
	Element Element
	Path    Path
	Err     error // parse error; Path is empty when set
}

// Result holds the flattened elements of one document.
type Result struct {
	Document Document
	Elements []ElementResult
}

// Subpaths returns the number of subpaths across all elements.
func (r Result) Subpaths() int {
	total := 0
	for _, el := range r.Elements {
		total += len(el.Path)
	}

	return total
}

// Points returns the number of points across all elements.
func (r Result) Points() int {
	total := 0
	for _, el := range r.Elements {
		total += el.Path.PointCount()
	}

	return total
}

// Failed returns the number of elements that could not be parsed.
func (r Result) Failed() int {
	failed := 0

	for _, el := range r.Elements {
		if el.Err != nil {
			failed++
		}
	}

	return failed
}

// Mismatch is a path element whose flattened polylines did not survive a
// round trip through encoded path data.
type Mismatch struct {
	Source  FilePath
	Element Element
	Diff    string // unified diff of plot instructions, empty when re-parsing failed
	Err     error
}
