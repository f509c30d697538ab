package printer

import (
	"strconv"
	"strings"

	"github.com/bshepherdson/mal/go/types"
)

func printSeq(members []types.Data, readable bool, open, close string) string {
	outs := make([]string, 0, len(members))
	for _, m := range members {
		outs = append(outs, PrintStr(m, readable))
	}
	return open + strings.Join(outs, " ") + close
}

// PrintStr renders di. With readable set, strings come out as their source
// literal; otherwise as their raw contents.
func PrintStr(di types.Data, readable bool) string {
	switch d := di.(type) {
	case *types.DList:
		return printSeq(d.Members, readable, "(", ")")

	case *types.DVector:
		return printSeq(d.Members, readable, "[", "]")

	case *types.DHashMap:
		outs := []string{}
		for _, e := range d.Entries() {
			outs = append(outs, PrintStr(e.Key, readable), PrintStr(e.Value, readable))
		}
		return "{" + strings.Join(outs, " ") + "}"

	case *types.DString:
		if readable {
			return d.Display
		}
		return d.Str

	case *types.DNumber:
		return strconv.FormatInt(d.Num, 10)

	case *types.DKeyword:
		return ":" + d.Name

	case *types.DSymbol:
		return d.Name

	case *types.DBool:
		if d.Val {
			return "true"
		}
		return "false"

	case *types.DNil:
		return "nil"

	case types.DNative:
		return "#<function>"

	default:
		panic("Unknown Data type")
	}
}
