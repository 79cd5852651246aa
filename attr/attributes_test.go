package attr

import (
	"errors"
	"image/color"
	"strconv"
	"strings"
	"testing"

	"github.com/signadot/knitchart/header"
)

func TestDefaults(t *testing.T) {
	a := Defaults()
	if a.Rows() != 0 || a.Columns() != 0 {
		t.Errorf("got %dx%d want 0x0", a.Rows(), a.Columns())
	}
	if a.Knit() != '.' || a.Purl() != 'X' || a.Empty() != ' ' {
		t.Errorf("got markers %q %q %q", a.Knit(), a.Purl(), a.Empty())
	}
	if want := (color.NRGBA{R: 245, G: 245, B: 245, A: 255}); a.Background() != want {
		t.Errorf("got background %v want %v", a.Background(), want)
	}
	if want := (color.NRGBA{R: 169, G: 169, B: 169, A: 255}); a.GridColor() != want {
		t.Errorf("got grid color %v want %v", a.GridColor(), want)
	}
	if a.CellSize() != 20 || a.DotSize() != 10 {
		t.Errorf("got cell size %v dot size %v", a.CellSize(), a.DotSize())
	}
}

func TestDefaultsAreFresh(t *testing.T) {
	a := Defaults()
	if err := a.SetValue(RowsAttr, "9"); err != nil {
		t.Fatal(err)
	}
	if Defaults().Rows() != 0 {
		t.Error("changing one Attributes changed the defaults")
	}
}

func TestSpecDefaultsParse(t *testing.T) {
	specs := Specs()
	if len(specs) != 9 {
		t.Errorf("got %d specs want 9", len(specs))
	}
	d := Defaults()
	for _, s := range specs {
		v, err := s.Parse(s.Default)
		if err != nil {
			t.Errorf("%s: default %q: %v", s.Name, s.Default, err)
			continue
		}
		if v.Kind() != s.Kind {
			t.Errorf("%s: got kind %s want %s", s.Name, v.Kind(), s.Kind)
		}
		got, ok := d.Get(s.Name)
		if !ok {
			t.Errorf("%s: not found by Get", s.Name)
			continue
		}
		if got != v {
			t.Errorf("%s: got default %s want %s", s.Name, got, v)
		}
		// the string form of a value parses back to the same value
		back, err := s.Parse(got.String())
		if err != nil {
			t.Errorf("%s: reparse %q: %v", s.Name, got.String(), err)
			continue
		}
		if back != got {
			t.Errorf("%s: reparse got %s want %s", s.Name, back, got)
		}
	}
	for i := 1; i < len(specs); i++ {
		if specs[i-1].Name >= specs[i].Name {
			t.Errorf("specs not sorted: %s before %s", specs[i-1].Name, specs[i].Name)
		}
	}
}

func TestRegisterRejectsBadSpecs(t *testing.T) {
	r := &registry{specs: map[string]*Spec{}}
	good := &Spec{
		Name: "rows", Default: "1", Kind: CountKind,
		Parse: parseCount,
		Set:   func(a *Attributes, v Value) { a.rows = v.Count() },
	}
	if err := r.register(good); err != nil {
		t.Fatal(err)
	}
	if err := r.register(good); !errors.Is(err, errSpecExists) {
		t.Errorf("got %v want %v", err, errSpecExists)
	}
	badDefault := *good
	badDefault.Name, badDefault.Default = "other", "many"
	if err := r.register(&badDefault); !errors.Is(err, ErrCount) {
		t.Errorf("got %v want %v", err, ErrCount)
	}
	badKind := *good
	badKind.Name, badKind.Parse = "third", parseChar
	if err := r.register(&badKind); err == nil {
		t.Error("expected kind mismatch error")
	}
	badName := *good
	badName.Name = "grid-color"
	if err := r.register(&badName); err == nil {
		t.Error("expected bad identifier error")
	}
}

func TestLookup(t *testing.T) {
	s, ok := Lookup(EmptyAttr)
	if !ok {
		t.Fatal("empty not registered")
	}
	if s.Kind != CharKind || s.Default != "SPACE" {
		t.Errorf("got %+v", s)
	}
	if _, ok := Lookup("colour"); ok {
		t.Error("unexpected spec for colour")
	}
}

func TestResolve(t *testing.T) {
	in := `
rows=32
columns=64
knit=SPACE
purl=X
empty=#
`
	h, err := header.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	a, err := Resolve(h)
	if err != nil {
		t.Fatal(err)
	}
	if a.Rows() != 32 || a.Columns() != 64 {
		t.Errorf("got %dx%d want 32x64", a.Rows(), a.Columns())
	}
	if a.Knit() != ' ' || a.Purl() != 'X' || a.Empty() != '#' {
		t.Errorf("got markers %q %q %q", a.Knit(), a.Purl(), a.Empty())
	}
}

func TestResolveDecorations(t *testing.T) {
	in := "background=#102030\ngridColor=rgba(1,2,3,0.5)\ncellSize=12.5px\ndotSize=4\n"
	h, err := header.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	a, err := Resolve(h)
	if err != nil {
		t.Fatal(err)
	}
	if want := (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}); a.Background() != want {
		t.Errorf("got %v want %v", a.Background(), want)
	}
	if want := (color.NRGBA{R: 1, G: 2, B: 3, A: 128}); a.GridColor() != want {
		t.Errorf("got %v want %v", a.GridColor(), want)
	}
	if a.CellSize() != 12.5 || a.DotSize() != 4 {
		t.Errorf("got cell %v dot %v", a.CellSize(), a.DotSize())
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, key := range []string{"colour", "Rows", "knitChar", "x1"} {
		h, err := header.Parse(strings.NewReader("rows=2\n" + key + "=3\n"))
		if err != nil {
			t.Fatal(err)
		}
		_, err = Resolve(h)
		if !errors.Is(err, ErrUnknownAttrName) {
			t.Errorf("%s: got %v want %v", key, err, ErrUnknownAttrName)
			continue
		}
		var unknown *UnknownAttrErr
		if !errors.As(err, &unknown) {
			t.Errorf("%s: got %T", key, err)
			continue
		}
		if unknown.Name != key || unknown.Line != 2 {
			t.Errorf("got name %q line %d want %q line 2", unknown.Name, unknown.Line, key)
		}
	}
}

func TestResolveBadValues(t *testing.T) {
	bad := []struct {
		in  string
		err error
	}{
		{in: "rows=many", err: strconv.ErrSyntax},
		{in: "rows=-1", err: ErrCount},
		{in: "columns= 3", err: ErrCount},
		{in: "rows=18446744073709551615", err: strconv.ErrRange},
		{in: "columns=18446744073709551615", err: ErrCount},
		{in: "columns=100000000000", err: ErrCount},
		{in: "rows=4097", err: ErrCount},
		{in: "knit=", err: ErrInvalidCharName},
		{in: "purl=XX", err: ErrInvalidCharName},
		{in: "background=notacolor", err: ErrColor},
		{in: "gridColor=#12345", err: ErrColor},
		{in: "cellSize=big", err: ErrLength},
	}
	for _, b := range bad {
		h, err := header.Parse(strings.NewReader("// first\n" + b.in))
		if err != nil {
			t.Fatal(err)
		}
		_, err = Resolve(h)
		if !errors.Is(err, b.err) {
			t.Errorf("%q: got %v want %v", b.in, err, b.err)
			continue
		}
		var attrErr *AttrErr
		if !errors.As(err, &attrErr) {
			t.Errorf("%q: got %T want *AttrErr", b.in, err)
			continue
		}
		name, _, _ := strings.Cut(b.in, "=")
		if attrErr.Name != name || attrErr.Line != 2 {
			t.Errorf("%q: got name %q line %d", b.in, attrErr.Name, attrErr.Line)
		}
	}
}

func TestResolveFirstErrorByLine(t *testing.T) {
	h, err := header.Parse(strings.NewReader("rows=1\npurl=bad\nknit=bad\n"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Resolve(h)
	var attrErr *AttrErr
	if !errors.As(err, &attrErr) || attrErr.Name != PurlAttr {
		t.Errorf("got %v want error for purl", err)
	}
}

func TestSetValueUnknown(t *testing.T) {
	err := Defaults().SetValue("nope", "1")
	var unknown *UnknownAttrErr
	if !errors.As(err, &unknown) || unknown.Line != 0 {
		t.Fatalf("got %v", err)
	}
	if unknown.Error() != "the attr nope is unknown" {
		t.Errorf("got %q", unknown.Error())
	}
}

func TestAmbiguous(t *testing.T) {
	a := Defaults()
	if c := a.Ambiguous(); len(c) != 0 {
		t.Errorf("got %v for defaults", c)
	}
	if err := a.SetValue(PurlAttr, "."); err != nil {
		t.Fatal(err)
	}
	c := a.Ambiguous()
	if len(c) != 1 || c[0] != (Clash{First: KnitAttr, Second: PurlAttr, Char: '.'}) {
		t.Errorf("got %v", c)
	}
	if err := a.SetValue(EmptyAttr, "."); err != nil {
		t.Fatal(err)
	}
	if c := a.Ambiguous(); len(c) != 3 {
		t.Errorf("got %v want 3 clashes", c)
	}
}

func TestValueKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic reading a count as a char")
		}
	}()
	CountValue(3).Char()
}
