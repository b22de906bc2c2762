package pagination

// Policy clamps caller-supplied page parameters for list endpoints.
// Default and Max come from configuration so the changelist size can be
// tuned without touching the handlers.
type Policy struct {
	DefaultPageSize int
	MaxPageSize     int
}

type Page struct {
	Number int
	Size   int
}

func (p Policy) Resolve(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size <= 0 {
		size = p.DefaultPageSize
	}
	if p.MaxPageSize > 0 && size > p.MaxPageSize {
		size = p.MaxPageSize
	}
	return Page{Number: number, Size: size}
}

func (p Page) Limit() uint64 {
	return uint64(p.Size)
}

func (p Page) Offset() uint64 {
	return uint64((p.Number - 1) * p.Size)
}
