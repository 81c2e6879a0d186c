package embed

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/hostbridge/host-bridge/errors"
	"github.com/hostbridge/host-bridge/heap"
	"github.com/hostbridge/host-bridge/hostval"
)

// ExternalPtr is a host-managed container for a native object of type T.
// The host owns the object's allocation from construction on and reclaims
// it through the registered finalizer.
type ExternalPtr[T any] struct {
	val *hostval.Value
}

// New moves obj into a host-managed container tracked by h and registers
// its finalizer, to run on collection or host-session teardown. The
// allocation and registration are one uninterruptible unit with respect to
// the host allocator.
func New[T any](h *heap.Heap, obj T) (*ExternalPtr[T], error) {
	return NewProtected(h, obj, nil)
}

// NewProtected is New with a companion value kept alive alongside the
// embedding.
func NewProtected[T any](h *heap.Heap, obj T, prot *hostval.Value) (*ExternalPtr[T], error) {
	ptr := &obj

	var (
		v   *hostval.Value
		err error
	)
	hostval.Critical(func() {
		tag := hostval.ScalarString(typeName[T]())
		v = hostval.NewExternal(ptr, tag, prot)
		if _, err = h.Track(v); err != nil {
			return
		}
		err = h.RegisterFinalizer(v, finalize, true)
	})
	if err != nil {
		return nil, err
	}

	Logger().Debug("object embedded", zap.String("type", typeName[T]()))
	return &ExternalPtr[T]{val: v}, nil
}

// finalize is the collector's reclamation callback: it drops the tag and
// nulls the stored pointer. Idempotent, and safe for embeddings that were
// never dereferenced.
func finalize(v *hostval.Value) {
	v.ClearExternal()
}

// TryFrom validates that a dynamic value is a live embedding: the tag must
// be opaque-pointer and the stored pointer non-null.
func TryFrom[T any](v *hostval.Value) (*ExternalPtr[T], error) {
	if v.Kind() != hostval.KindExternalPtr {
		return nil, &errors.Error{Phase: errors.PhaseEmbed, Kind: errors.KindExpectedExternalPtr, Value: v}
	}
	// Tag-based type checking is deliberately omitted: the descriptive tag
	// is diagnostics only. The pointer itself carries the native type.
	if v.ExternalAddr() == nil {
		return nil, &errors.Error{Phase: errors.PhaseEmbed, Kind: errors.KindExpectedExternalNonNullPtr, Value: v}
	}
	return &ExternalPtr[T]{val: v}, nil
}

// Ref dereferences the stored pointer read-only. Returns ok=false once the
// finalizer has cleared the pointer, or when the embedded object is not a T.
func (p *ExternalPtr[T]) Ref() (*T, bool) {
	addr := p.val.ExternalAddr()
	if addr == nil {
		return nil, false
	}
	t, ok := addr.(*T)
	return t, ok
}

// RefMut dereferences the stored pointer read-write. Exclusivity against
// concurrent Ref calls is the caller's contract.
func (p *ExternalPtr[T]) RefMut() (*T, bool) {
	return p.Ref()
}

// MustRef dereferences without the liveness check. Calling it on a cleared
// embedding is a native programming error and panics; use TryFrom and Ref
// for the recoverable path.
func (p *ExternalPtr[T]) MustRef() *T {
	t, ok := p.Ref()
	if !ok {
		panic("embed: dereference of cleared external pointer")
	}
	return t
}

// Tag returns the descriptive tag, the native type name in the common case.
func (p *ExternalPtr[T]) Tag() *hostval.Value {
	return p.val.ExternalTag()
}

// Protected returns the protected companion, null in the common case.
func (p *ExternalPtr[T]) Protected() *hostval.Value {
	return p.val.ExternalProtected()
}

// Value returns the underlying dynamic value for handing to the host.
func (p *ExternalPtr[T]) Value() *hostval.Value {
	return p.val
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
