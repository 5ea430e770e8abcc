package storageclient

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const (
	progressBarWidth     = 32
	progressRenderPeriod = 120 * time.Millisecond
)

// progressBar рисует в out однострочный индикатор передачи: полоса, процент, объём и скорость.
// nil-значение допустимо и ничего не выводит.
type progressBar struct {
	mu sync.Mutex

	out     io.Writer
	prefix  string
	total   int64
	current int64

	started    time.Time
	lastRender time.Time
	lastWidth  int
	finished   bool
}

// newProgressBar возвращает nil, если вывод прогресса отключён.
func newProgressBar(out io.Writer, prefix string, total int64) *progressBar {
	if out == nil {
		return nil
	}
	return &progressBar{
		out:     out,
		prefix:  prefix,
		total:   total,
		started: time.Now(),
	}
}

func (p *progressBar) AddBytes(n int64) {
	if p == nil || n <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return
	}
	p.current += n
	p.drawLocked(false, "", false)
}

func (p *progressBar) render(force bool, suffix string) {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return
	}
	p.drawLocked(force, suffix, false)
}

func (p *progressBar) Finish() {
	p.complete(" ✓")
}

func (p *progressBar) Fail(err error) {
	if err == nil {
		p.complete(" ✗")
		return
	}
	p.complete(fmt.Sprintf(" ✗ %v", err))
}

func (p *progressBar) complete(suffix string) {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return
	}
	p.finished = true
	p.drawLocked(true, suffix, true)
}

// drawLocked перерисовывает строку не чаще progressRenderPeriod, если не force.
func (p *progressBar) drawLocked(force bool, suffix string, newline bool) {
	now := time.Now()
	if !force && now.Sub(p.lastRender) < progressRenderPeriod {
		return
	}
	p.lastRender = now

	line := p.lineLocked(now) + suffix
	pad := ""
	if p.lastWidth > len(line) {
		pad = strings.Repeat(" ", p.lastWidth-len(line))
	}
	p.lastWidth = len(line)

	end := ""
	if newline {
		end = "\n"
	}
	fmt.Fprintf(p.out, "\r%s%s%s", line, pad, end)
}

func (p *progressBar) lineLocked(now time.Time) string {
	var b strings.Builder
	b.WriteString(p.prefix)
	b.WriteByte(' ')

	if p.total > 0 {
		ratio := min(float64(p.current)/float64(p.total), 1)
		filled := min(int(ratio*progressBarWidth+0.5), progressBarWidth)
		b.WriteByte('[')
		b.WriteString(strings.Repeat("=", filled))
		b.WriteString(strings.Repeat(" ", progressBarWidth-filled))
		fmt.Fprintf(&b, "] %3d%% %s/%s", int(ratio*100+0.5), humanBytes(p.current), humanBytes(p.total))
	} else {
		fmt.Fprintf(&b, "%s transferred", humanBytes(p.current))
	}

	if elapsed := now.Sub(p.started).Seconds(); elapsed >= 1 {
		fmt.Fprintf(&b, " (%s/s)", humanBytes(int64(float64(p.current)/elapsed)))
	}

	return b.String()
}

// progressWriter передаёт количество записанных байт в индикатор; используется с io.TeeReader.
type progressWriter struct {
	bar *progressBar
}

func (w progressWriter) Write(p []byte) (int, error) {
	w.bar.AddBytes(int64(len(p)))
	return len(p), nil
}

// progressReadCloser закрывает индикатор по EOF, ошибке чтения или Close.
type progressReadCloser struct {
	io.ReadCloser
	bar  *progressBar
	once sync.Once
}

func newProgressReadCloser(inner io.ReadCloser, bar *progressBar) io.ReadCloser {
	if bar == nil || inner == nil {
		return inner
	}
	return &progressReadCloser{ReadCloser: inner, bar: bar}
}

func (p *progressReadCloser) Read(b []byte) (int, error) {
	n, err := p.ReadCloser.Read(b)
	p.bar.AddBytes(int64(n))
	if err != nil {
		p.finish(err)
	}
	return n, err
}

func (p *progressReadCloser) Close() error {
	err := p.ReadCloser.Close()
	p.finish(err)
	return err
}

func (p *progressReadCloser) finish(err error) {
	p.once.Do(func() {
		if err != nil && err != io.EOF {
			p.bar.Fail(err)
			return
		}
		p.bar.Finish()
	})
}

func humanBytes(v int64) string {
	const unit = 1024
	if v < unit {
		return fmt.Sprintf("%d B", v)
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	value := float64(v) / unit
	i := 0
	for value >= unit && i < len(units)-1 {
		value /= unit
		i++
	}
	return fmt.Sprintf("%.1f %s", value, units[i])
}
