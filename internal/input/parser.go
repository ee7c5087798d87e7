package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"knapsack/internal/domain"
)

// Problem is a fully indexed knapsack instance ready for the solvers.
type Problem struct {
	Capacity int
	Items    domain.ItemSet
	// Seed is set when the problem was generated rather than parsed.
	Seed uint64
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return Problem{}, err
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return Problem{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse reads the text format: capacity and item count as the first two
// whitespace separated tokens, followed by one "weight value" record per line.
// Blank lines and anything after '#' are ignored.
func Parse(r io.Reader) (Problem, error) {
	sc := bufio.NewScanner(r)
	var header []int
	var pairs []domain.Pair
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		nums, err := atoiAll(fields)
		if err != nil {
			return Problem{}, fmt.Errorf("%w: line %d: %v", domain.ErrInvalidInput, lineNo, err)
		}
		for len(header) < 2 && len(nums) > 0 {
			header = append(header, nums[0])
			nums = nums[1:]
		}
		if len(nums) == 0 {
			continue
		}
		if len(nums) != 2 {
			return Problem{}, fmt.Errorf("%w: line %d: want \"weight value\", got %d fields", domain.ErrInvalidInput, lineNo, len(nums))
		}
		pairs = append(pairs, domain.Pair{Weight: nums[0], Value: nums[1]})
	}
	if err := sc.Err(); err != nil {
		return Problem{}, err
	}
	if len(header) < 2 {
		return Problem{}, fmt.Errorf("%w: missing capacity and item count header", domain.ErrInvalidInput)
	}
	capacity, count := header[0], header[1]
	if err := domain.ValidateCapacity(capacity); err != nil {
		return Problem{}, err
	}
	if count != len(pairs) {
		return Problem{}, fmt.Errorf("%w: header declares %d items, found %d", domain.ErrInvalidInput, count, len(pairs))
	}
	items, err := domain.NewItemSet(pairs)
	if err != nil {
		return Problem{}, err
	}
	return Problem{Capacity: capacity, Items: items}, nil
}

// Write emits p in the format Parse reads.
func Write(w io.Writer, p Problem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", p.Capacity, len(p.Items))
	for _, it := range p.Items {
		fmt.Fprintf(bw, "%d %d\n", it.Weight, it.Value)
	}
	return bw.Flush()
}

func atoiAll(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", f)
		}
		out[i] = n
	}
	return out, nil
}
