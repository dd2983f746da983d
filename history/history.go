package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/mwalczyk/redcache/store"
	"go.uber.org/zap"
)

const (
	inputsSuffix  = ":inputs"
	outputsSuffix = ":outputs"
)

// StoreFunc is the shape of an operation the recorder can wrap: it takes
// a value and returns the key the value was stored under.
type StoreFunc func(ctx context.Context, value interface{}) (string, error)

// Call pairs the recorded input of one invocation with its output.
type Call struct {
	Input  string
	Output string
}

// Recorder appends the inputs and outputs of a wrapped operation to two
// parallel lists in the store, named "<op>:inputs" and "<op>:outputs".
// Entries at the same index belong to the same invocation.
type Recorder struct {
	store store.Store
	name  string
	log   *zap.SugaredLogger
}

// NewRecorder creates a recorder for the operation called name.
func NewRecorder(st store.Store, name string, log *zap.SugaredLogger) *Recorder {
	return &Recorder{
		store: st,
		name:  name,
		log:   log,
	}
}

// Wrap returns op with call recording attached. The input entry is
// appended before op runs, the output entry after it returns. When op
// fails its error propagates unchanged and no output entry is written.
func (r *Recorder) Wrap(op StoreFunc) StoreFunc {
	return func(ctx context.Context, value interface{}) (string, error) {
		if err := r.store.RPush(ctx, r.name+inputsSuffix, FormatArgs(value)); err != nil {
			return "", err
		}
		key, err := op(ctx, value)
		if err != nil {
			r.log.Debugf("%s failed, skipping output entry: %v", r.name, err)
			return "", err
		}
		if err := r.store.RPush(ctx, r.name+outputsSuffix, key); err != nil {
			return "", err
		}
		return key, nil
	}
}

// Inputs returns every recorded input entry in call order.
func (r *Recorder) Inputs(ctx context.Context) ([]string, error) {
	return r.store.LRange(ctx, r.name+inputsSuffix, 0, -1)
}

// Outputs returns every recorded output entry in call order.
func (r *Recorder) Outputs(ctx context.Context) ([]string, error) {
	return r.store.LRange(ctx, r.name+outputsSuffix, 0, -1)
}

// Calls returns how many invocations have been recorded.
func (r *Recorder) Calls(ctx context.Context) (int64, error) {
	return r.store.LLen(ctx, r.name+inputsSuffix)
}

// Replay pairs inputs with outputs by index. A trailing input without an
// output (the wrapped operation failed mid-call) yields a Call with an
// empty Output.
func (r *Recorder) Replay(ctx context.Context) ([]Call, error) {
	inputs, err := r.Inputs(ctx)
	if err != nil {
		return nil, err
	}
	outputs, err := r.Outputs(ctx)
	if err != nil {
		return nil, err
	}
	calls := make([]Call, len(inputs))
	for i, in := range inputs {
		calls[i] = Call{Input: in}
		if i < len(outputs) {
			calls[i].Output = outputs[i]
		}
	}
	return calls, nil
}

// FormatArgs renders an argument list as a single stable text entry, for
// example (foo) or (42). Byte slices are rendered as text. The format
// is owned by this package and is not a wire contract.
func FormatArgs(args ...interface{}) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case []byte:
			parts[i] = string(v)
		default:
			parts[i] = fmt.Sprintf("%v", v)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
