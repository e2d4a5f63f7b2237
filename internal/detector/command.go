package detector

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/eita-x/face-mosaic-oval/internal/landmark"
)

// Command runs an external landmarker process and exchanges one request per
// Detect call over its pipes. The wire protocol is symmetric and
// length-prefixed: the parent writes a big-endian uint32 byte count
// followed by a PNG-encoded image; the child replies with a uint32 count
// followed by a JSON document:
//
//	{"faces": [[{"x":0.41,"y":0.30,"z":-0.01}, ...], ...]}
//	{"error": "model not loaded"}
//
// Each inner array is one face's landmarks ordered by Face Mesh index.
// The child's stderr is captured so a crash surfaces its logs instead of a
// bare EOF.
//
// Command serializes Detect calls internally; the child handles one request
// at a time.
type Command struct {
	cmd    *exec.Cmd
	stderr *bytes.Buffer
	stdin  io.WriteCloser
	stdout io.ReadCloser

	mu sync.Mutex
}

// StartCommand launches the landmarker process. The process is expected to
// keep running and serve requests until its stdin closes.
func StartCommand(name string, args ...string) (*Command, error) {
	cmd := exec.Command(name, args...)
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("landmarker stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("landmarker stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start landmarker %q: %w", name, err)
	}

	return &Command{cmd: cmd, stderr: stderr, stdin: stdin, stdout: stdout}, nil
}

// Detect sends img to the landmarker and decodes its response.
func (c *Command) Detect(ctx context.Context, img image.Image) ([]landmark.Face, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode detect request: %w", err)
	}

	if err := binary.Write(c.stdin, binary.BigEndian, uint32(buf.Len())); err != nil {
		return nil, c.crashed(err)
	}
	if _, err := c.stdin.Write(buf.Bytes()); err != nil {
		return nil, c.crashed(err)
	}

	header := make([]byte, 4)
	if _, err := io.ReadFull(c.stdout, header); err != nil {
		return nil, c.crashed(err)
	}
	body := make([]byte, binary.BigEndian.Uint32(header))
	if _, err := io.ReadFull(c.stdout, body); err != nil {
		return nil, c.crashed(err)
	}

	return decodeResult(body)
}

// Close stops the landmarker by closing its stdin and reaping the process.
func (c *Command) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stdin.Close()
	return c.cmd.Wait()
}

// crashed wraps a pipe error with the tail of the child's stderr, which
// usually names the real cause (missing model file, import error, ...).
func (c *Command) crashed(err error) error {
	logs := strings.TrimSpace(c.stderr.String())
	if logs == "" {
		return fmt.Errorf("landmarker pipe: %w", err)
	}
	const tail = 2048
	if len(logs) > tail {
		logs = logs[len(logs)-tail:]
	}
	return fmt.Errorf("landmarker pipe: %w; process logs:\n%s", err, logs)
}

type wireLandmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type wireResult struct {
	Faces [][]wireLandmark `json:"faces"`
	Error string           `json:"error"`
}

func decodeResult(body []byte) ([]landmark.Face, error) {
	var res wireResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode detect response: %w", err)
	}
	if res.Error != "" {
		return nil, fmt.Errorf("landmarker: %s", res.Error)
	}

	faces := make([]landmark.Face, len(res.Faces))
	for i, wf := range res.Faces {
		face := make(landmark.Face, len(wf))
		for j, p := range wf {
			face[j] = landmark.Landmark{X: p.X, Y: p.Y, Z: p.Z}
		}
		faces[i] = face
	}
	return faces, nil
}
