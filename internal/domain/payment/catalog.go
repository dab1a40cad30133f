package payment

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateMethod = errors.New("duplicate payment method id")
	ErrInvalidType     = errors.New("invalid payment method type")
	ErrUnknownMethod   = errors.New("unknown payment method")
)

type Type string

const (
	TypeBank    Type = "bank"
	TypeEWallet Type = "ewallet"
	TypeQRIS    Type = "qris"
)

// TypeOrder is the presentation order of method groups.
var TypeOrder = []Type{TypeBank, TypeEWallet, TypeQRIS}

func (t Type) IsValid() bool {
	switch t {
	case TypeBank, TypeEWallet, TypeQRIS:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	return string(t)
}

type Method struct {
	ID          string
	DisplayName string
	Type        Type
	IconURL     string
}

// Group is one presentation bucket of methods sharing a type.
type Group struct {
	Type    Type
	Methods []Method
}

// Catalog is immutable after construction and safe for concurrent reads.
type Catalog struct {
	methods []Method
	byID    map[string]int
}

func NewCatalog(methods ...Method) (*Catalog, error) {
	c := &Catalog{
		methods: make([]Method, 0, len(methods)),
		byID:    make(map[string]int, len(methods)),
	}
	for _, m := range methods {
		if !m.Type.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidType, m.Type)
		}
		if _, ok := c.byID[m.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMethod, m.ID)
		}
		c.byID[m.ID] = len(c.methods)
		c.methods = append(c.methods, m)
	}
	return c, nil
}

func DefaultMethods() []Method {
	return []Method{
		{ID: "bca", DisplayName: "BCA Virtual Account", Type: TypeBank, IconURL: "/icons/payment/bca.svg"},
		{ID: "mandiri", DisplayName: "Mandiri Virtual Account", Type: TypeBank, IconURL: "/icons/payment/mandiri.svg"},
		{ID: "gopay", DisplayName: "GoPay", Type: TypeEWallet, IconURL: "/icons/payment/gopay.svg"},
		{ID: "ovo", DisplayName: "OVO", Type: TypeEWallet, IconURL: "/icons/payment/ovo.svg"},
		{ID: "dana", DisplayName: "DANA", Type: TypeEWallet, IconURL: "/icons/payment/dana.svg"},
		{ID: "qris", DisplayName: "QRIS", Type: TypeQRIS, IconURL: "/icons/payment/qris.svg"},
	}
}

func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultMethods()...)
	if err != nil {
		panic(err)
	}
	return c
}

// Restrict keeps only the listed ids, in catalog order. An empty list keeps everything.
func (c *Catalog) Restrict(ids []string) (*Catalog, error) {
	if len(ids) == 0 {
		return c, nil
	}
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := c.byID[id]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, id)
		}
		want[id] = struct{}{}
	}
	kept := make([]Method, 0, len(want))
	for _, m := range c.methods {
		if _, ok := want[m.ID]; ok {
			kept = append(kept, m)
		}
	}
	return NewCatalog(kept...)
}

func (c *Catalog) Find(id string) (Method, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Method{}, false
	}
	return c.methods[i], true
}

func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

func (c *Catalog) All() []Method {
	out := make([]Method, len(c.methods))
	copy(out, c.methods)
	return out
}

func (c *Catalog) Len() int {
	return len(c.methods)
}

// GroupedByType preserves insertion order within each type.
func (c *Catalog) GroupedByType() map[Type][]Method {
	out := make(map[Type][]Method)
	for _, m := range c.methods {
		out[m.Type] = append(out[m.Type], m)
	}
	return out
}

// Groups returns non-empty groups in TypeOrder.
func (c *Catalog) Groups() []Group {
	grouped := c.GroupedByType()
	out := make([]Group, 0, len(TypeOrder))
	for _, t := range TypeOrder {
		if ms := grouped[t]; len(ms) > 0 {
			out = append(out, Group{Type: t, Methods: ms})
		}
	}
	return out
}
