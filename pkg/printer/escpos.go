package printer

import (
	"bytes"
	"strings"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Common code pages for the ESC t command.
const (
	CodePagePC437  = 0  // USA, standard Europe
	CodePagePC864  = 22 // Arabic
	CodePageWin125 = 16 // Windows-1252
)

// Job builds an ESC/POS byte stream around pre-rendered receipt text.
// Layout is done upstream on a character grid, so the job only carries
// printer control commands plus raw lines.
type Job struct {
	buf bytes.Buffer
}

// NewJob creates a job and sends ESC @ (initialize printer).
func NewJob() *Job {
	j := &Job{}
	j.buf.Write([]byte{ESC, '@'})
	return j
}

// SetCodePage selects the printer character table (ESC t).
func (j *Job) SetCodePage(page byte) *Job {
	j.buf.Write([]byte{ESC, 't', page})
	return j
}

// SetAlign sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (j *Job) SetAlign(align int) *Job {
	j.buf.Write([]byte{ESC, 'a', byte(align)})
	return j
}

// SetBold enables or disables bold text.
func (j *Job) SetBold(on bool) *Job {
	b := byte(0)
	if on {
		b = 1
	}
	j.buf.Write([]byte{ESC, 'E', b})
	return j
}

// Line writes a raw line of pre-padded text followed by a line feed.
func (j *Job) Line(s string) *Job {
	j.buf.WriteString(s)
	j.buf.WriteByte(LF)
	return j
}

// Body writes every line of a pre-rendered document.
func (j *Job) Body(text string) *Job {
	for _, line := range strings.Split(text, "\n") {
		j.Line(line)
	}
	return j
}

// FeedLines sends n line feeds.
func (j *Job) FeedLines(n int) *Job {
	for i := 0; i < n; i++ {
		j.buf.WriteByte(LF)
	}
	return j
}

// Cut sends the paper cut command (full cut).
func (j *Job) Cut() *Job {
	j.buf.Write([]byte{GS, 'V', 0x00})
	return j
}

// PartialCut sends the partial cut command.
func (j *Job) PartialCut() *Job {
	j.buf.Write([]byte{GS, 'V', 0x01})
	return j
}

// Bytes returns the accumulated ESC/POS byte stream.
func (j *Job) Bytes() []byte {
	return j.buf.Bytes()
}

// EncodeReceipt wraps a pre-rendered receipt document in a complete
// print job: init, code page, body, feed and partial cut.
func EncodeReceipt(text string) []byte {
	return NewJob().
		SetCodePage(CodePagePC437).
		SetAlign(AlignLeft).
		Body(text).
		FeedLines(2).
		PartialCut().
		Bytes()
}
