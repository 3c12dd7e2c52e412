// Package errors provides error wrapping with slog annotations and source
// locations so that failures carry enough context to be diagnosed from logs.
//
// It re-exports the parts of the standard library errors package that callers
// need so that this package can be imported as a drop-in replacement.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// AnnotatedError is an error with slog annotations and the source location of
// the place where it was created.
type AnnotatedError struct {
	msg         string
	wrapped     error
	annotations []slog.Attr
	source      string
}

// Error implements the error interface.
func (e *AnnotatedError) Error() string {
	if e.wrapped == nil {
		return e.msg
	}
	return e.msg + ": " + e.wrapped.Error()
}

// Unwrap returns the wrapped error so that [Is] and [As] can traverse it.
func (e *AnnotatedError) Unwrap() error {
	return e.wrapped
}

// NewSentinel creates a sentinel error that records its creation site.
func NewSentinel(msg string) error {
	return &AnnotatedError{
		msg:         msg,
		wrapped:     nil,
		annotations: nil,
		source:      callerSource(),
	}
}

// Wrap annotates err with a message and optional slog attributes. The
// annotations of inner AnnotatedErrors are preserved and merged.
func Wrap(err error, msg string, annotations ...slog.Attr) error {
	var inner *AnnotatedError
	if errors.As(err, &inner) {
		annotations = append(annotations, inner.annotations...)
	}
	return &AnnotatedError{
		msg:         msg,
		wrapped:     err,
		annotations: annotations,
		source:      callerSource(),
	}
}

// DecoratePanic converts a recovered panic value into an error whose source
// points at the panicking line.
func DecoratePanic(recovered any) error {
	return &AnnotatedError{
		msg:         fmt.Sprintf("panic: %v", recovered),
		wrapped:     nil,
		annotations: nil,
		source:      panicSource(),
	}
}

// SlogError converts an error into a [slog.Attr] carrying the message, the
// annotations, and the source location of the innermost annotated error.
// It tolerates nil and plain errors.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	attrs := []any{slog.String("message", err.Error())}

	var annotated *AnnotatedError
	if errors.As(err, &annotated) {
		attrs = append(attrs, slog.String("source", annotated.source))
		if len(annotated.annotations) > 0 {
			annotationArgs := make([]any, 0, len(annotated.annotations))
			for _, a := range annotated.annotations {
				annotationArgs = append(annotationArgs, a)
			}
			attrs = append(attrs, slog.Group("annotations", annotationArgs...))
		}
	}

	return slog.Group("error", attrs...)
}

// callerSource returns the file:line of the first caller outside this file.
func callerSource() string {
	var pcs [16]uintptr
	n := runtime.Callers(2, pcs[:]) //nolint:mnd // skip runtime.Callers and callerSource.
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasSuffix(frame.File, "annotatederror.go") {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return "unknown"
}

// panicSource returns the file:line of the frame that panicked. It looks for
// the first frame after runtime.gopanic so that deferred recovery helpers are
// skipped.
func panicSource() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:]) //nolint:mnd // skip runtime.Callers and panicSource.
	frames := runtime.CallersFrames(pcs[:n])
	seenGopanic := false
	fallback := "unknown"
	for {
		frame, more := frames.Next()
		if seenGopanic {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if frame.Function == "runtime.gopanic" {
			seenGopanic = true
		}
		if fallback == "unknown" && !strings.HasSuffix(frame.File, "annotatederror.go") {
			fallback = fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return fallback
}

// New returns an error with the given message. See [errors.New].
func New(msg string) error {
	return errors.New(msg) //nolint:err113 // thin re-export.
}

// Is reports whether any error in err's tree matches target. See [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target. See [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err. See [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join wraps the given errors into a single error. See [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}
