package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"warlineup/lib/services/lineup"
	"warlineup/lib/utils/logging"
)

var ErrInvalidWarSize = errors.New("war lineup size must be an integer")

var logger = logging.NewLogger("PROMPT")

type answer struct {
	line string
	err  error
}

// Prompter asks the interactive questions on out and reads answers from in,
// one line per answer. Reads happen on a background goroutine so a canceled
// context ends a pending question immediately.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	start   sync.Once
	answers chan answer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, answers: make(chan answer)}
}

// readLines feeds answers one line at a time until the reader fails.
// A final line without a newline is still delivered; io.EOF is only
// reported when nothing was read.
func (p *Prompter) readLines() {
	for {
		line, err := p.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			p.answers <- answer{err: err}
			close(p.answers)
			return
		}
		p.answers <- answer{line: strings.TrimRight(line, "\r\n")}
		if err != nil {
			close(p.answers)
			return
		}
	}
}

// ask prints prompt and waits for the next line or for ctx to end.
func (p *Prompter) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.start.Do(func() { go p.readLines() })

	fmt.Fprint(p.out, prompt)
	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	case a, ok := <-p.answers:
		if !ok {
			return "", io.EOF
		}
		return a.line, a.err
	}
}

// ClanTag asks for the clan tag. The answer is trimmed but otherwise
// passed through; tags are expected to start with '#'.
func (p *Prompter) ClanTag(ctx context.Context) (string, error) {
	tag, err := p.ask(ctx, "Enter your clan tag (include #): ")
	if err != nil {
		return "", fmt.Errorf("read clan tag: %w", err)
	}
	return strings.TrimSpace(tag), nil
}

// WarSize asks for the lineup size. Any integer is accepted; zero and
// negative sizes select nobody.
func (p *Prompter) WarSize(ctx context.Context) (int, error) {
	answer, err := p.ask(ctx, "Enter war lineup size: ")
	if err != nil {
		return 0, fmt.Errorf("read war size: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWarSize, answer)
	}
	return n, nil
}

var weightPrompts = [4]string{
	"Town Hall Level importance: ",
	"Troops Donated importance: ",
	"Trophy Count importance: ",
	"War Stars importance: ",
}

// Weights asks for the four stat weights. The first unreadable or
// non-integer answer ends the questions and every weight becomes 1.
// Values outside 0-10 are kept as entered. The only error returned is
// the context's.
func (p *Prompter) Weights(ctx context.Context) (lineup.WeightVector, error) {
	fmt.Fprintln(p.out, "\nRate the importance of each factor (0-10):")

	var w lineup.WeightVector
	fields := [4]*int{&w.TownHall, &w.Donations, &w.Trophies, &w.WarStars}
	for i, prompt := range weightPrompts {
		answer, err := p.ask(ctx, prompt)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return lineup.WeightVector{}, ctxErr
		}
		if err == nil {
			*fields[i], err = lineup.ParseWeight(answer)
		}
		if err != nil {
			logger.Debug("WEIGHTS_DEFAULTED", map[string]any{
				logging.REASON: err.Error(),
			})
			fmt.Fprintln(p.out, "Invalid input, defaulting all weights to 1.")
			return lineup.DefaultWeights(), nil
		}
	}

	if outside := w.OutOfRange(); len(outside) > 0 {
		logger.Debug("WEIGHT_OUT_OF_RANGE", map[string]any{
			logging.WEIGHT: strings.Join(outside, ","),
		})
	}
	return w, nil
}
