// Package errors annotates errors with structured context and source locations so that a single
// [slog.Attr] describes the whole failure chain.
package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

const maxPanicFrames = 32

type sentinelError struct {
	msg string
}

func (e *sentinelError) Error() string {
	return e.msg
}

// NewSentinel creates an error meant to be compared with [Is]. Two sentinels with the same message are
// different errors.
func NewSentinel(msg string) error {
	return &sentinelError{msg: msg}
}

type annotatedError struct {
	msg   string
	cause error
	attrs []slog.Attr
	pc    uintptr
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// Wrap annotates err with msg and attrs. The source location of the caller is recorded and reported by
// [SlogError].
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:]) //nolint:mnd // skip runtime.Callers and Wrap.
	return &annotatedError{
		msg:   msg,
		cause: err,
		attrs: attrs,
		pc:    pcs[0],
	}
}

// DecoratePanic converts a value returned by recover into an error pointing at the panic site.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	var cause error
	if err, ok := recovered.(error); ok {
		cause = err
	} else {
		cause = NewSentinel(fmt.Sprint(recovered))
	}
	return &annotatedError{
		msg:   "panic",
		cause: cause,
		attrs: nil,
		pc:    panicSite(),
	}
}

// panicSite finds the frame that called panic by skipping over the runtime frames.
func panicSite() uintptr {
	pcs := make([]uintptr, maxPanicFrames)
	n := runtime.Callers(3, pcs) //nolint:mnd // skip runtime.Callers, panicSite and DecoratePanic.
	frames := runtime.CallersFrames(pcs[:n])
	var (
		first     uintptr
		sawPanic  bool
		more      = true
		frame     runtime.Frame
		isRuntime bool
	)
	for more {
		frame, more = frames.Next()
		if first == 0 {
			first = frame.PC
		}
		isRuntime = strings.HasPrefix(frame.Function, "runtime.")
		if frame.Function == "runtime.gopanic" {
			sawPanic = true
			continue
		}
		if sawPanic && !isRuntime {
			return frame.PC
		}
	}
	return first
}

// SlogError turns err into a group attribute containing the message, the annotations collected from the
// whole error chain and the source location of the outermost annotation.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}
	var (
		annotations []any
		source      string
	)
	walk(err, func(ae *annotatedError) {
		for _, attr := range ae.attrs {
			annotations = append(annotations, attr)
		}
		if source == "" && ae.pc != 0 {
			source = sourceOf(ae.pc)
		}
	})
	args := []any{slog.String("message", err.Error())}
	if len(annotations) > 0 {
		args = append(args, slog.Group("annotations", annotations...))
	}
	if source != "" {
		args = append(args, slog.String("source", source))
	}
	return slog.Group("error", args...)
}

func walk(err error, visit func(*annotatedError)) {
	for err != nil {
		if ae, ok := err.(*annotatedError); ok { //nolint:errorlint // walking the chain manually.
			visit(ae)
		}
		if joined, ok := err.(interface{ Unwrap() []error }); ok { //nolint:errorlint // same as above.
			for _, e := range joined.Unwrap() {
				walk(e, visit)
			}
			return
		}
		err = stderrors.Unwrap(err)
	}
}

func sourceOf(pc uintptr) string {
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", frame.File, frame.Line)
}

// New is [stderrors.New].
func New(text string) error {
	return stderrors.New(text) //nolint:err113 // thin re-export.
}

// Is is [stderrors.Is].
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As is [stderrors.As].
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap is [stderrors.Unwrap].
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join is [stderrors.Join].
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}
