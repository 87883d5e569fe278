// Package velderr is the error catalogue of the veld kernel: every failure a
// cell can produce carries a code and, where known, a source position.
package velderr

import (
	"fmt"
	"log/slog"
)

// Loc is a line/column position inside a cell source.
type Loc struct {
	Line, Column int
}

func (l Loc) Pos() Loc { return l }

func (l Loc) String() string {
	if l == (Loc{}) {
		return "?:?"
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Positioner allows finding the location in the cell source.
// The easiest way to be a Positioner is to embed a Loc.
type Positioner interface {
	Pos() Loc
}

type Errors struct {
	errs []VeldError
}

func (r *Errors) With(err ...VeldError) *Errors {
	if r == nil {
		return &Errors{errs: err}
	}
	for _, err := range err {
		r.errs = append(r.errs, err)
	}
	return r
}

func (r *Errors) Merge(err *Errors) *Errors {
	if r == nil {
		return err
	}
	if err == nil {
		return r
	}
	if len(err.errs) == 0 {
		return r
	}
	return r.With(err.errs...)
}

func (r *Errors) Errors() []VeldError {
	return r.errs
}

func (r *Errors) HasError() bool {
	if r == nil {
		return false
	}
	return len(r.errs) > 0
}

func (r *Errors) LogValue() slog.Value {
	var vals []slog.Attr
	for i, v := range r.errs {
		vals = append(vals, slog.Attr{
			Key: fmt.Sprint("e", i),
			Value: slog.GroupValue(
				slog.Attr{
					Key:   "msg",
					Value: slog.StringValue(FormatWithCode(v)),
				},
			),
		})
	}
	return slog.GroupValue(vals...)
}
