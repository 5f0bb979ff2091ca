package asset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/litescript/ls-planets/internal/linear"
)

var (
	// ErrBadHeader is returned for Radiance files with a malformed header.
	ErrBadHeader = errors.New("bad radiance header")

	// ErrUnsupportedFormat is returned for image data no decoder understands.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

const maxHDRDimension = 1 << 15

// DecodeHDR decodes a Radiance RGBE (.hdr) image into linear colors.
// Both new-style run-length encoded scanlines and flat scanlines are read.
func DecodeHDR(r io.Reader) (*Texture, error) {
	br := bufio.NewReader(r)

	w, h, err := readHDRHeader(br)
	if err != nil {
		return nil, err
	}

	tex := NewTexture(w, h)
	scan := make([]byte, w*4)
	for y := 0; y < h; y++ {
		if err := readScanline(br, scan, w); err != nil {
			return nil, fmt.Errorf("scanline %d: %w", y, err)
		}
		for x := 0; x < w; x++ {
			tex.Set(x, y, rgbeToColor(scan[x*4:x*4+4]))
		}
	}
	return tex, nil
}

func readHDRHeader(br *bufio.Reader) (int, int, error) {
	magic, err := br.ReadString('\n')
	if err != nil {
		return 0, 0, fmt.Errorf("read magic: %w", err)
	}
	magic = strings.TrimSpace(magic)
	if magic != "#?RADIANCE" && magic != "#?RGBE" {
		return 0, 0, fmt.Errorf("%w: magic %q", ErrBadHeader, magic)
	}

	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return 0, 0, fmt.Errorf("read header: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		if v, ok := strings.CutPrefix(line, "FORMAT="); ok && v != "32-bit_rle_rgbe" {
			return 0, 0, fmt.Errorf("%w: format %q", ErrUnsupportedFormat, v)
		}
	}

	res, err := br.ReadString('\n')
	if err != nil {
		return 0, 0, fmt.Errorf("read resolution: %w", err)
	}
	fields := strings.Fields(res)
	if len(fields) != 4 || fields[0] != "-Y" || fields[2] != "+X" {
		return 0, 0, fmt.Errorf("%w: resolution %q", ErrBadHeader, strings.TrimSpace(res))
	}
	h, errH := strconv.Atoi(fields[1])
	w, errW := strconv.Atoi(fields[3])
	if errH != nil || errW != nil || w <= 0 || h <= 0 || w > maxHDRDimension || h > maxHDRDimension {
		return 0, 0, fmt.Errorf("%w: resolution %q", ErrBadHeader, strings.TrimSpace(res))
	}
	return w, h, nil
}

func readScanline(br *bufio.Reader, scan []byte, w int) error {
	head, err := br.Peek(4)
	if err != nil {
		return err
	}

	rle := w >= 8 && w < 0x8000 && head[0] == 2 && head[1] == 2 && head[2]&0x80 == 0
	if !rle {
		_, err := io.ReadFull(br, scan)
		return err
	}

	if _, err := br.Discard(4); err != nil {
		return err
	}
	if got := int(head[2])<<8 | int(head[3]); got != w {
		return fmt.Errorf("rle width %d, want %d", got, w)
	}

	// Channels are stored one after another, each run-length encoded.
	for ch := 0; ch < 4; ch++ {
		x := 0
		for x < w {
			count, err := br.ReadByte()
			if err != nil {
				return err
			}
			if count > 128 {
				n := int(count - 128)
				if x+n > w {
					return errors.New("rle run overflows scanline")
				}
				v, err := br.ReadByte()
				if err != nil {
					return err
				}
				for i := 0; i < n; i++ {
					scan[(x+i)*4+ch] = v
				}
				x += n
			} else {
				n := int(count)
				if n == 0 || x+n > w {
					return errors.New("bad rle literal length")
				}
				for i := 0; i < n; i++ {
					v, err := br.ReadByte()
					if err != nil {
						return err
					}
					scan[(x+i)*4+ch] = v
				}
				x += n
			}
		}
	}
	return nil
}

func rgbeToColor(p []byte) linear.Color {
	if p[3] == 0 {
		return linear.Color{}
	}
	f := math.Ldexp(1, int(p[3])-(128+8))
	return linear.Color{
		R: float64(p[0]) * f,
		G: float64(p[1]) * f,
		B: float64(p[2]) * f,
	}
}
