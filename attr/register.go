package attr

import (
	"fmt"
	"sort"
	"sync"

	"github.com/signadot/knitchart/token"
)

const (
	RowsAttr       = "rows"
	ColumnsAttr    = "columns"
	KnitAttr       = "knit"
	PurlAttr       = "purl"
	EmptyAttr      = "empty"
	BackgroundAttr = "background"
	GridColorAttr  = "gridColor"
	CellSizeAttr   = "cellSize"
	DotSizeAttr    = "dotSize"
)

// Spec describes one attribute. Parse turns header text into a Value of
// Kind, Set stores such a Value and Get reads it back.
type Spec struct {
	Name    string
	Default string
	Kind    Kind
	Doc     string

	Parse func(string) (Value, error)
	Set   func(*Attributes, Value)
	Get   func(*Attributes) Value
}

type registry struct {
	specs    map[string]*Spec
	defaults Attributes
}

var theRegistry = sync.OnceValue(func() *registry {
	r := &registry{specs: map[string]*Spec{}}
	for _, s := range builtinSpecs() {
		if err := r.register(s); err != nil {
			panic(err)
		}
	}
	return r
})

func (r *registry) register(s *Spec) error {
	if err := token.CheckIdent(s.Name); err != nil {
		return fmt.Errorf("attribute name %q: %w", s.Name, err)
	}
	if _, present := r.specs[s.Name]; present {
		return fmt.Errorf("%s: %w", s.Name, errSpecExists)
	}
	v, err := s.Parse(s.Default)
	if err != nil {
		return fmt.Errorf("default for %s: %w", s.Name, err)
	}
	if v.Kind() != s.Kind {
		return fmt.Errorf("default for %s: parsed %s, want %s", s.Name, v.Kind(), s.Kind)
	}
	s.Set(&r.defaults, v)
	r.specs[s.Name] = s
	return nil
}

// Lookup returns the spec registered under name.
func Lookup(name string) (Spec, bool) {
	s, ok := theRegistry().specs[name]
	if !ok {
		return Spec{}, false
	}
	return *s, true
}

// Specs returns all registered specs sorted by name.
func Specs() []Spec {
	r := theRegistry()
	res := make([]Spec, 0, len(r.specs))
	for _, s := range r.specs {
		res = append(res, *s)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}

func builtinSpecs() []*Spec {
	return []*Spec{
		{
			Name: RowsAttr, Default: "0", Kind: CountKind,
			Doc:   "number of rows, 0 uses the number of chart lines",
			Parse: parseDimension,
			Set:   func(a *Attributes, v Value) { a.rows = v.Count() },
			Get:   func(a *Attributes) Value { return CountValue(a.rows) },
		},
		{
			Name: ColumnsAttr, Default: "0", Kind: CountKind,
			Doc:   "stitches per row, 0 uses the longest chart line",
			Parse: parseDimension,
			Set:   func(a *Attributes, v Value) { a.columns = v.Count() },
			Get:   func(a *Attributes) Value { return CountValue(a.columns) },
		},
		{
			Name: KnitAttr, Default: ".", Kind: CharKind,
			Doc:   "character for a knit stitch",
			Parse: parseChar,
			Set:   func(a *Attributes, v Value) { a.knit = v.Char() },
			Get:   func(a *Attributes) Value { return CharValue(a.knit) },
		},
		{
			Name: PurlAttr, Default: "X", Kind: CharKind,
			Doc:   "character for a purl stitch",
			Parse: parseChar,
			Set:   func(a *Attributes, v Value) { a.purl = v.Char() },
			Get:   func(a *Attributes) Value { return CharValue(a.purl) },
		},
		{
			Name: EmptyAttr, Default: "SPACE", Kind: CharKind,
			Doc:   "character for a cell with no stitch",
			Parse: parseChar,
			Set:   func(a *Attributes, v Value) { a.empty = v.Char() },
			Get:   func(a *Attributes) Value { return CharValue(a.empty) },
		},
		{
			Name: BackgroundAttr, Default: "whitesmoke", Kind: ColorKind,
			Doc:   "background color",
			Parse: parseColor,
			Set:   func(a *Attributes, v Value) { a.background = v.Color() },
			Get:   func(a *Attributes) Value { return ColorValue(a.background) },
		},
		{
			Name: GridColorAttr, Default: "darkgray", Kind: ColorKind,
			Doc:   "grid line color",
			Parse: parseColor,
			Set:   func(a *Attributes, v Value) { a.gridColor = v.Color() },
			Get:   func(a *Attributes) Value { return ColorValue(a.gridColor) },
		},
		{
			Name: CellSizeAttr, Default: "20px", Kind: LengthKind,
			Doc:   "width and height of a cell",
			Parse: parseLength,
			Set:   func(a *Attributes, v Value) { a.cellSize = v.Length() },
			Get:   func(a *Attributes) Value { return LengthValue(a.cellSize) },
		},
		{
			Name: DotSizeAttr, Default: "10px", Kind: LengthKind,
			Doc:   "diameter of a purl dot",
			Parse: parseLength,
			Set:   func(a *Attributes, v Value) { a.dotSize = v.Length() },
			Get:   func(a *Attributes) Value { return LengthValue(a.dotSize) },
		},
	}
}
