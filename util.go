package mathbraille

import (
	"github.com/boynton/mathbraille/util"
)

func Pretty(obj interface{}) string {
	return util.Pretty(obj)
}

// Annotate renders err against the source it was reported for, in the style
// of a compiler diagnostic. Errors without a meaningful position (empty
// input) are rendered without source context.
func Annotate(filename string, source string, err *Error, color string) string {
	if err.Kind == EmptyInput {
		return util.FormattedAnnotation(filename, "", "", err.Error(), 0, "", -1)
	}
	return util.FormattedAnnotation(filename, source, "", err.Error(), err.Position, color, 0)
}
