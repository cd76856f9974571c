package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/sadie/internal/canvas"
	"github.com/dshills/sadie/internal/canvas/charset"
)

// DefaultTimeout bounds loading a script and one Generate call.
const DefaultTimeout = 5 * time.Second

// CellFuncName is the global a script must define.
const CellFuncName = "cell"

// NoColor marks an absent fg or bg in a Result.
const NoColor = -1

// Result is one evaluated cell.
type Result struct {
	ID charset.CharID
	FG int // palette index, or NoColor
	BG int // palette index, or NoColor
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeout sets the deadline for loading and for each Generate call.
// Non-positive durations disable it.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.timeout = d
	}
}

// WithLogger routes print output and diagnostics to log.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// Generator evaluates a compiled script's cell function.
//
// gopher-lua states are not goroutine-safe; the mutex serialises calls.
type Generator struct {
	name    string
	timeout time.Duration
	log     zerolog.Logger

	mu     sync.Mutex
	L      *lua.LState
	fn     *lua.LFunction
	closed bool
}

// Open loads the script at path.
func Open(ctx context.Context, path string, opts ...Option) (*Generator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Script: path, Index: -1, Err: err}
	}
	defer f.Close()
	return Compile(ctx, filepath.Base(path), f, opts...)
}

// CompileString loads a script from source.
func CompileString(ctx context.Context, name, source string, opts ...Option) (*Generator, error) {
	return Compile(ctx, name, strings.NewReader(source), opts...)
}

// Compile runs the script's top level and looks up its cell function.
func Compile(ctx context.Context, name string, r io.Reader, opts ...Option) (*Generator, error) {
	g := &Generator{
		name:    name,
		timeout: DefaultTimeout,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With().Str("component", "script").Str("script", name).Logger()
	g.L = newSandboxedState(g.log)

	fail := func(err error) (*Generator, error) {
		g.L.Close()
		return nil, &Error{Script: name, Index: -1, Err: err}
	}

	chunk, err := g.L.Load(r, name)
	if err != nil {
		return fail(err)
	}

	ctx, cancel := g.deadline(ctx)
	defer cancel()
	g.L.SetContext(ctx)
	defer g.L.RemoveContext()

	g.L.Push(chunk)
	if err := g.L.PCall(0, 0, nil); err != nil {
		return fail(g.contextErr(ctx, err))
	}

	fn, ok := g.L.GetGlobal(CellFuncName).(*lua.LFunction)
	if !ok {
		return fail(ErrNoCellFunc)
	}
	g.fn = fn

	g.log.Debug().Msg("script loaded")
	return g, nil
}

// Name returns the script's name.
func (g *Generator) Name() string {
	return g.name
}

// Cell evaluates a single cell.
func (g *Generator) Cell(ctx context.Context, index, x, y, count int) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return Result{}, ErrClosed
	}

	g.L.SetContext(ctx)
	defer g.L.RemoveContext()
	return g.call(ctx, index, x, y, count)
}

// Generate evaluates every cell of a size canvas in row-major order.
func (g *Generator) Generate(ctx context.Context, size canvas.Size, count int) ([]Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil, ErrClosed
	}

	ctx, cancel := g.deadline(ctx)
	defer cancel()
	g.L.SetContext(ctx)
	defer g.L.RemoveContext()

	width := int(size.Width)
	results := make([]Result, size.Area())
	for i := range results {
		r, err := g.call(ctx, i, i%width, i/width, count)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}

	g.log.Debug().Int("cells", len(results)).Msg("generated")
	return results, nil
}

func (g *Generator) call(ctx context.Context, index, x, y, count int) (Result, error) {
	wrap := func(err error) (Result, error) {
		return Result{}, &Error{Script: g.name, Index: index, Err: err}
	}

	base := g.L.GetTop()
	g.L.Push(g.fn)
	g.L.Push(lua.LNumber(index))
	g.L.Push(lua.LNumber(x))
	g.L.Push(lua.LNumber(y))
	g.L.Push(lua.LNumber(count))
	if err := g.L.PCall(4, 3, nil); err != nil {
		g.L.SetTop(base)
		return wrap(g.contextErr(ctx, err))
	}
	id, fg, bg := g.L.Get(base+1), g.L.Get(base+2), g.L.Get(base+3)
	g.L.SetTop(base)

	rawID, err := toIndex(id, false)
	if err != nil {
		return wrap(fmt.Errorf("id: %w", err))
	}
	fgIdx, err := toIndex(fg, true)
	if err != nil {
		return wrap(fmt.Errorf("fg: %w", err))
	}
	bgIdx, err := toIndex(bg, true)
	if err != nil {
		return wrap(fmt.Errorf("bg: %w", err))
	}

	return Result{ID: clampID(rawID, count), FG: fgIdx, BG: bgIdx}, nil
}

// toIndex converts a returned value to a non-negative integer. nil is
// allowed only when optional, and yields NoColor.
func toIndex(v lua.LValue, optional bool) (int, error) {
	if v == lua.LNil && optional {
		return NoColor, nil
	}
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%w: got %s", ErrBadReturn, v.Type())
	}
	f := float64(n)
	if f < 0 || f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 {
		return 0, fmt.Errorf("%w: got %v", ErrBadReturn, f)
	}
	return int(f), nil
}

// clampID maps ids past the end of the charset to 0.
func clampID(id, count int) charset.CharID {
	if id >= count || id > math.MaxUint16 {
		return 0
	}
	return charset.CharID(id)
}

func (g *Generator) deadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

// contextErr reports a cancelled or expired context as ErrTimeout.
func (g *Generator) contextErr(ctx context.Context, err error) error {
	if cerr := ctx.Err(); cerr != nil {
		return fmt.Errorf("%w: %w", ErrTimeout, cerr)
	}
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) && apiErr.Object != nil {
		return errors.New(apiErr.Object.String())
	}
	return err
}

// Close releases the Lua state.
func (g *Generator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil
	}
	g.L.Close()
	g.closed = true
	return nil
}
