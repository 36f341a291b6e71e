package model

import (
	"encoding/base64"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

const maxStringLength = 1024 * 1024

var (
	codeRegex      = regexp.MustCompile(`^\S+( \S+)*$`)
	idRegex        = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)
	uriRegex       = regexp.MustCompile(`^\S+$`)
	canonicalRegex = regexp.MustCompile(`^\S+(\|\S+)?$`)
	oidRegex       = regexp.MustCompile(`^urn:oid:[012](\.(0|[1-9]\d*))+$`)
	dateRegex      = regexp.MustCompile(`^([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)(-(0[1-9]|1[0-2])(-(0[1-9]|[1-2][0-9]|3[0-1]))?)?$`)
	dateTimeRegex  = regexp.MustCompile(`^([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)(-(0[1-9]|1[0-2])(-(0[1-9]|[1-2][0-9]|3[0-1])(T([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]{1,9})?)?)?(Z|(\+|-)((0[0-9]|1[0-3]):[0-5][0-9]|14:00)?)?)?$`)
	instantRegex   = regexp.MustCompile(`^([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)-(0[1-9]|1[0-2])-(0[1-9]|[1-2][0-9]|3[0-1])T([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]{1,9})?(Z|(\+|-)((0[0-9]|1[0-3]):[0-5][0-9]|14:00))$`)
	timeRegex      = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]{1,9})?$`)
)

// Primitive type definitions.
var (
	BooleanDef = primitive("boolean", ElementDef, func(v Value) error {
		_, err := as[BooleanValue](v)
		return err
	})
	IntegerDef = primitive("integer", ElementDef, integerRange(math.MinInt32))

	// PositiveIntDef and UnsignedIntDef derive from integer.
	PositiveIntDef  = primitive("positiveInt", IntegerDef, integerRange(1))
	UnsignedIntDef  = primitive("unsignedInt", IntegerDef, integerRange(0))
	DecimalDef      = primitive("decimal", ElementDef, checkDecimal)
	StringDef       = primitive("string", ElementDef, checkString)
	CodeDef         = primitive("code", StringDef, pattern(codeRegex))
	IdDef           = primitive("id", StringDef, pattern(idRegex))
	MarkdownDef     = primitive("markdown", StringDef, checkString)
	UriDef          = primitive("uri", ElementDef, pattern(uriRegex))
	UrlDef          = primitive("url", UriDef, pattern(uriRegex))
	CanonicalDef    = primitive("canonical", UriDef, pattern(canonicalRegex))
	OidDef          = primitive("oid", UriDef, pattern(oidRegex))
	UuidDef         = primitive("uuid", UriDef, checkUuid)
	Base64BinaryDef = primitive("base64Binary", ElementDef, checkBase64)
	DateDef         = primitive("date", ElementDef, pattern(dateRegex))
	DateTimeDef     = primitive("dateTime", ElementDef, pattern(dateTimeRegex))
	InstantDef      = primitive("instant", ElementDef, pattern(instantRegex))
	TimeDef         = primitive("time", ElementDef, pattern(timeRegex))
	XhtmlDef        = primitive("xhtml", ElementDef, checkXhtml)
)

// PrimitiveTypes returns all primitive definitions.
func PrimitiveTypes() []*TypeDef {
	return []*TypeDef{
		BooleanDef, IntegerDef, PositiveIntDef, UnsignedIntDef, DecimalDef,
		StringDef, CodeDef, IdDef, MarkdownDef,
		UriDef, UrlDef, CanonicalDef, OidDef, UuidDef,
		Base64BinaryDef, DateDef, DateTimeDef, InstantDef, TimeDef, XhtmlDef,
	}
}

// PrimitiveTypeNames returns the names of all primitive types.
func PrimitiveTypeNames() []string {
	var names []string
	for _, p := range PrimitiveTypes() {
		names = append(names, p.Name)
	}
	return names
}

func primitive(name string, base *TypeDef, lexical func(Value) error) *TypeDef {
	return Define(TypeDef{
		Name:    name,
		Kind:    KindPrimitive,
		Base:    base,
		Lexical: lexical,
	})
}

func as[T Value](v Value) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("expected %s value, got %s", valueKind(zero), valueKind(v))
	}
	return t, nil
}

func integerRange(min int64) func(Value) error {
	return func(v Value) error {
		i, err := as[IntegerValue](v)
		if err != nil {
			return err
		}
		if int64(i) < min || int64(i) > math.MaxInt32 {
			return fmt.Errorf("%d is out of range [%d, %d]", i, min, math.MaxInt32)
		}
		return nil
	}
}

func checkDecimal(v Value) error {
	d, err := as[DecimalValue](v)
	if err != nil {
		return err
	}
	if d.d != nil && d.d.Form != apd.Finite {
		return fmt.Errorf("decimal must be finite, got %s", d.d.String())
	}
	return nil
}

func checkString(v Value) error {
	s, err := as[StringValue](v)
	if err != nil {
		return err
	}
	if len(s) > maxStringLength {
		return fmt.Errorf("string exceeds %d bytes", maxStringLength)
	}
	if !utf8.ValidString(string(s)) {
		return fmt.Errorf("string is not valid UTF-8")
	}
	if strings.TrimFunc(string(s), unicode.IsSpace) == "" {
		return fmt.Errorf("string must contain at least one non-whitespace character")
	}
	return nil
}

func pattern(re *regexp.Regexp) func(Value) error {
	return func(v Value) error {
		s, err := as[StringValue](v)
		if err != nil {
			return err
		}
		if !re.MatchString(string(s)) {
			return fmt.Errorf("%q does not match %s", s, re)
		}
		return nil
	}
}

func checkUuid(v Value) error {
	s, err := as[StringValue](v)
	if err != nil {
		return err
	}
	rest, ok := strings.CutPrefix(string(s), "urn:uuid:")
	if !ok {
		return fmt.Errorf("%q lacks the urn:uuid: prefix", s)
	}
	if _, err := uuid.Parse(rest); err != nil || len(rest) != 36 {
		return fmt.Errorf("%q is not a valid uuid", s)
	}
	return nil
}

func checkBase64(v Value) error {
	s, err := as[StringValue](v)
	if err != nil {
		return err
	}
	if _, err := base64.StdEncoding.DecodeString(string(s)); err != nil {
		return fmt.Errorf("invalid base64: %w", err)
	}
	return nil
}

func checkXhtml(v Value) error {
	s, err := as[StringValue](v)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(strings.TrimSpace(string(s)), "<div") {
		return fmt.Errorf("narrative must be a <div> element")
	}
	return nil
}

// NewPrimitive builds a primitive node of the given type holding v.
func NewPrimitive(def *TypeDef, v Value) (*Node, error) {
	return NewBuilder(def).Value(v).Build()
}

func NewBoolean(b bool) (*Node, error) { return NewPrimitive(BooleanDef, BooleanValue(b)) }
func NewInteger(i int64) (*Node, error) { return NewPrimitive(IntegerDef, IntegerValue(i)) }
func NewPositiveInt(i int64) (*Node, error) {
	return NewPrimitive(PositiveIntDef, IntegerValue(i))
}
func NewUnsignedInt(i int64) (*Node, error) {
	return NewPrimitive(UnsignedIntDef, IntegerValue(i))
}

// NewDecimal parses s, keeping its precision.
func NewDecimal(s string) (*Node, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return nil, &ValidationError{Err: ErrInvalidValue, Type: DecimalDef.Name, Detail: err.Error()}
	}
	return NewPrimitive(DecimalDef, d)
}

func NewString(s string) (*Node, error) { return NewPrimitive(StringDef, StringValue(s)) }
func NewCode(s string) (*Node, error) { return NewPrimitive(CodeDef, StringValue(s)) }
func NewId(s string) (*Node, error) { return NewPrimitive(IdDef, StringValue(s)) }
func NewMarkdown(s string) (*Node, error) { return NewPrimitive(MarkdownDef, StringValue(s)) }
func NewUri(s string) (*Node, error) { return NewPrimitive(UriDef, StringValue(s)) }
func NewUrl(s string) (*Node, error) { return NewPrimitive(UrlDef, StringValue(s)) }
func NewCanonical(s string) (*Node, error) { return NewPrimitive(CanonicalDef, StringValue(s)) }
func NewOid(s string) (*Node, error) { return NewPrimitive(OidDef, StringValue(s)) }
func NewUuid(s string) (*Node, error) { return NewPrimitive(UuidDef, StringValue(s)) }
func NewBase64Binary(s string) (*Node, error) { return NewPrimitive(Base64BinaryDef, StringValue(s)) }
func NewDate(s string) (*Node, error) { return NewPrimitive(DateDef, StringValue(s)) }
func NewDateTime(s string) (*Node, error) { return NewPrimitive(DateTimeDef, StringValue(s)) }
func NewInstant(s string) (*Node, error) { return NewPrimitive(InstantDef, StringValue(s)) }
func NewTime(s string) (*Node, error) { return NewPrimitive(TimeDef, StringValue(s)) }
func NewXhtml(s string) (*Node, error) { return NewPrimitive(XhtmlDef, StringValue(s)) }

// RandomUuid returns a uuid node holding a freshly generated urn:uuid: value.
func RandomUuid() *Node {
	return Must(NewUuid("urn:uuid:" + uuid.NewString()))
}

// Must is a helper that wraps a call to a function returning (*Node, error)
// and panics if the error is non-nil.
func Must(n *Node, err error) *Node {
	if err != nil {
		panic(err)
	}
	return n
}
