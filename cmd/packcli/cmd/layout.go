package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"github.com/spacemeshos/packvec/packed"
)

// layoutRows describes each storage byte of v: its index, its bits, the
// indices of the elements it holds and how many of its bits are unused.
func layoutRows[T any](v *packed.Vector[T], msbFirst bool) [][]string {
	storage := v.Bytes()
	width := int(v.BitWidth())
	perByte := 8 / width
	n := v.Len()

	rows := make([][]string, 0, len(storage))
	for i, b := range storage {
		first := i * perByte
		last := first + perByte - 1
		if last >= n {
			last = n - 1
		}

		elements := make([]string, 0, perByte)
		for j := first; j <= last; j++ {
			val, _ := v.Get(j)
			elements = append(elements, fmt.Sprintf("%d=%v", j, val))
		}

		rows = append(rows, []string{
			strconv.Itoa(i),
			packed.FormatByte(b, msbFirst),
			strings.Join(elements, " "),
			strconv.Itoa(8 - (last-first+1)*width),
		})
	}
	return rows
}

func report[T any](w io.Writer, s *state, v *packed.Vector[T]) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"byte", "bits", "elements", "unused"})
	table.SetBorder(true)
	table.AppendBulk(layoutRows(v, s.cfg.MSBFirst))
	table.Render()

	size := uint64(len(v.Bytes()))
	_, err := fmt.Fprintf(w, "elements: %d, width: %d bits, storage: %s\n", v.Len(), v.BitWidth(), bytefmt.ByteSize(size))

	s.logger.Info("packed",
		zap.Int("elements", v.Len()),
		zap.Uint("width", v.BitWidth()),
		zap.Uint64("bytes", size),
	)
	return err
}
