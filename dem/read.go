package dem

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/gruppe-adler/meh-flt/internal/utils"
)

const (
	headerExtension     = "hdr"
	payloadExtension    = "flt"
	projectionExtension = "prj"
)

// Reader reads grids from zip archives and directories. A Reader holds no
// state between calls and may be used from multiple goroutines.
type Reader struct {
	logger          *slog.Logger
	caseInsensitive bool
	parallelism     int
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithCaseInsensitiveExtensions makes "HDR" and "Flt" count as hdr and flt.
func WithCaseInsensitiveExtensions() Option {
	return func(r *Reader) {
		r.caseInsensitive = true
	}
}

// WithParallelism limits how many grids ReadGrids parses at the same time.
func WithParallelism(n int) Option {
	return func(r *Reader) {
		if n > 0 {
			r.parallelism = n
		}
	}
}

// NewReader creates a Reader.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		logger:      slog.Default(),
		parallelism: defaultParallelism,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadGrid reads the grid at path using a Reader with default options.
// If compressed is true path has to be a zip archive, otherwise a directory.
func ReadGrid(path string, compressed bool) (Grid, error) {
	return NewReader().ReadGrid(path, compressed)
}

// ReadGrid reads the grid at path. If compressed is true path has to be a
// zip archive, otherwise a directory. The members may come in any order.
func (r *Reader) ReadGrid(path string, compressed bool) (Grid, error) {
	src, err := openSource(path, compressed)
	if err != nil {
		return Grid{}, err
	}
	defer src.Close()

	var a assembler
	for _, m := range src.members {
		if err := r.dispatch(&a, m); err != nil {
			return Grid{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	grid, err := a.grid()
	if err != nil {
		return Grid{}, fmt.Errorf("%s: %w", path, err)
	}

	r.logger.Debug("read grid",
		slog.String("path", path),
		slog.Uint64("rows", grid.Rows),
		slog.Uint64("cols", grid.Cols),
		slog.Float64("min", float64(grid.MinHeight)),
		slog.Float64("max", float64(grid.MaxHeight)))

	return grid, nil
}

func (r *Reader) dispatch(a *assembler, m member) error {
	ext := utils.Extension(m.name)
	if r.caseInsensitive {
		ext = strings.ToLower(ext)
	}

	switch ext {
	case headerExtension:
		r.logger.Debug("reading header", slog.String("member", m.name))
		return withMember(m, func(reader io.Reader) error {
			header, err := ParseHeader(reader)
			if err != nil {
				return err
			}
			a.setHeader(m.name, header)
			return nil
		})
	case payloadExtension:
		r.logger.Debug("reading payload", slog.String("member", m.name), slog.Int64("size", m.size))
		return withMember(m, func(reader io.Reader) error {
			payload, err := ParsePayload(reader, m.size)
			if err != nil {
				return err
			}
			a.setPayload(m.name, payload)
			return nil
		})
	case projectionExtension:
		r.logger.Debug("ignoring projection", slog.String("member", m.name))
	default:
		r.logger.Debug("skipping member", slog.String("member", m.name), slog.String("ext", ext))
	}

	return nil
}

// withMember opens m, hands it to fn and closes it again.
func withMember(m member, fn func(io.Reader) error) error {
	rc, err := m.open()
	if err != nil {
		return memberError(m.name, fmt.Errorf("%w: %v", ErrMemberUnreadable, err))
	}
	defer rc.Close()

	return memberError(m.name, fn(rc))
}

type assemblerState int

const (
	stateInitial assemblerState = iota
	stateHeaderKnown
	statePayloadKnown
	stateReady
)

// assembler collects header and payload in whatever order they arrive.
// A second header or payload replaces the first one.
type assembler struct {
	state       assemblerState
	header      Header
	headerName  string
	payload     Payload
	payloadName string
}

func (a *assembler) setHeader(name string, header Header) {
	a.header, a.headerName = header, name

	switch a.state {
	case stateInitial:
		a.state = stateHeaderKnown
	case statePayloadKnown:
		a.state = stateReady
	}
}

func (a *assembler) setPayload(name string, payload Payload) {
	a.payload, a.payloadName = payload, name

	switch a.state {
	case stateInitial:
		a.state = statePayloadKnown
	case stateHeaderKnown:
		a.state = stateReady
	}
}

func (a *assembler) grid() (Grid, error) {
	switch a.state {
	case stateInitial:
		return Grid{}, fmt.Errorf("%w: no %s and no %s file", ErrGridIncomplete, headerExtension, payloadExtension)
	case stateHeaderKnown:
		return Grid{}, fmt.Errorf("%w: no %s file", ErrGridIncomplete, payloadExtension)
	case statePayloadKnown:
		return Grid{}, fmt.Errorf("%w: no %s file", ErrGridIncomplete, headerExtension)
	}

	header := a.header
	if !header.RowsSet {
		return Grid{}, memberError(a.headerName, fmt.Errorf("%w: nrows missing", ErrHeaderMalformed))
	}
	if !header.ColsSet {
		return Grid{}, memberError(a.headerName, fmt.Errorf("%w: ncols missing", ErrHeaderMalformed))
	}
	if header.Rows == 0 || header.Cols == 0 {
		return Grid{}, memberError(a.headerName, fmt.Errorf("%w: empty grid %dx%d", ErrHeaderMalformed, header.Cols, header.Rows))
	}

	count := uint64(len(a.payload.Points))
	if header.Rows > math.MaxUint64/header.Cols || count != header.Rows*header.Cols {
		return Grid{}, memberError(a.payloadName, fmt.Errorf("%w: %d values for %dx%d cells", ErrGridSizeMismatch, count, header.Cols, header.Rows))
	}

	if i := a.payload.IndexOf(header.NoDataValue); i >= 0 {
		row, col := uint64(i)/header.Cols, uint64(i)%header.Cols
		return Grid{}, memberError(a.payloadName, fmt.Errorf("%w: %v at row %d col %d", ErrNoDataEncountered, header.NoDataValue, row, col))
	}

	return Grid{
		Rows:       header.Rows,
		Cols:       header.Cols,
		CellSize:   header.CellSize,
		XLowerLeft: header.XLowerLeft,
		YLowerLeft: header.YLowerLeft,
		Points:     a.payload.Points,
		MinHeight:  a.payload.MinHeight,
		MaxHeight:  a.payload.MaxHeight,
	}, nil
}
