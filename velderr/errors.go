package velderr

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Parse
	UndefinedVariable
	TypeMismatch
	NotCallable
	Arity
	BadTypeParam
	UnknownType
	DepthLimit
	BadOperand
)

type VeldError interface {
	Error() string
	Code() ErrCode
	Positioner

	withStack([]byte) VeldError
	getStack() []byte
}

func FormatWithCode(e VeldError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E VeldError](err E) VeldError {
	return err.withStack(debug.Stack())
}

type Unclassified struct {
	From error
	Positioner
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) VeldError {
	e.stack = stack
	return e
}

type NewParse struct {
	Positioner
	ParserMessage string
	Hint          string
	stack         []byte
}

func (e NewParse) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s (%s)", e.ParserMessage, e.Hint)
	}
	return e.ParserMessage
}
func (e NewParse) Code() ErrCode    { return Parse }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) VeldError {
	e.stack = stack
	return e
}

type NewUndefinedVariable struct {
	Positioner
	Name  string
	stack []byte
}

func (e NewUndefinedVariable) Code() ErrCode { return UndefinedVariable }
func (e NewUndefinedVariable) Error() string {
	return fmt.Sprintf("variable '%s' is not defined", e.Name)
}
func (e NewUndefinedVariable) getStack() []byte { return e.stack }
func (e NewUndefinedVariable) withStack(stack []byte) VeldError {
	e.stack = stack
	return e
}

// NewTypeMismatch is the conversion error raised at an assignment site when
// the declared tag cannot represent the assigned value.
type NewTypeMismatch struct {
	Positioner
	Want   string
	Got    string
	Reason string
	stack  []byte
}

func (e NewTypeMismatch) Code() ErrCode { return TypeMismatch }
func (e NewTypeMismatch) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot convert value of type tag '%s' to '%s': %s", e.Got, e.Want, e.Reason)
	}
	return fmt.Sprintf("cannot convert value of type tag '%s' to '%s'", e.Got, e.Want)
}
func (e NewTypeMismatch) getStack() []byte { return e.stack }
func (e NewTypeMismatch) withStack(stack []byte) VeldError {
	e.stack = stack
	return e
}

type NewNotCallable struct {
	Positioner
	TypeName string
	stack    []byte
}

func (e NewNotCallable) Code() ErrCode { return NotCallable }
func (e NewNotCallable) Error() string {
	return fmt.Sprintf("value of type tag '%s' is not callable", e.TypeName)
}
func (e NewNotCallable) getStack() []byte { return e.stack }
func (e NewNotCallable) withStack(stack []byte) VeldError {
	e.stack = stack
	return e
}

type NewArity struct {
	Positioner
	Name  string
	Want  int
	Got   int
	stack []byte
}

func (e NewArity) Code() ErrCode { return Arity }
func (e NewArity) Error() string {
	return fmt.Sprintf("'%s' expects %d argument(s), got %d", e.Name, e.Want, e.Got)
}
func (e NewArity) getStack() []byte { return e.stack }
func (e NewArity) withStack(stack []byte) VeldError {
	e.stack = stack
	return e
}

type NewBadTypeParam struct {
	Positioner
	TypeName string
	Reason   string
	stack    []byte
}

func (e NewBadTypeParam) Code() ErrCode { return BadTypeParam }
func (e NewBadTypeParam) Error() string {
	return fmt.Sprintf("cannot instantiate '%s': %s", e.TypeName, e.Reason)
}
func (e NewBadTypeParam) getStack() []byte { return e.stack }
func (e NewBadTypeParam) withStack(stack []byte) VeldError {
	e.stack = stack
	return e
}

type NewUnknownType struct {
	Positioner
	Name  string
	stack []byte
}

func (e NewUnknownType) Code() ErrCode { return UnknownType }
func (e NewUnknownType) Error() string {
	return fmt.Sprintf("'%s' does not name a type", e.Name)
}
func (e NewUnknownType) getStack() []byte { return e.stack }
func (e NewUnknownType) withStack(stack []byte) VeldError {
	e.stack = stack
	return e
}

type NewDepthLimit struct {
	Positioner
	Limit int
	stack []byte
}

func (e NewDepthLimit) Code() ErrCode { return DepthLimit }
func (e NewDepthLimit) Error() string {
	return fmt.Sprintf("call depth exceeded the limit of %d", e.Limit)
}
func (e NewDepthLimit) getStack() []byte { return e.stack }
func (e NewDepthLimit) withStack(stack []byte) VeldError {
	e.stack = stack
	return e
}

// NewBadOperand covers operator applications over operands the operator does
// not support, like adding a string to a float.
type NewBadOperand struct {
	Positioner
	Op     string
	Reason string
	stack  []byte
}

func (e NewBadOperand) Code() ErrCode { return BadOperand }
func (e NewBadOperand) Error() string {
	return fmt.Sprintf("cannot apply '%s': %s", e.Op, e.Reason)
}
func (e NewBadOperand) getStack() []byte { return e.stack }
func (e NewBadOperand) withStack(stack []byte) VeldError {
	e.stack = stack
	return e
}
