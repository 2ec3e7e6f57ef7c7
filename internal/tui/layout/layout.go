// Package layout picks the top-level composition from the viewport state.
package layout

type Kind int

const (
	Loading Kind = iota
	Desktop
	Mobile
)

func (k Kind) String() string {
	switch k {
	case Desktop:
		return "desktop"
	case Mobile:
		return "mobile"
	}
	return "loading"
}

// Select returns Loading while the viewport is still being determined,
// Desktop for wide terminals and Mobile otherwise.
func Select(wide, determining bool) Kind {
	switch {
	case determining:
		return Loading
	case wide:
		return Desktop
	}
	return Mobile
}
