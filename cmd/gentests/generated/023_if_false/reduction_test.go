
package gentests
import _ "embed"
import "testing"
import "github.com/vic/lambda-repl/cmd/gentests/helper"
//go:embed input.lam
var input string
//go:embed output.lam
var output string
//go:embed canonical.txt
var canonical string
func Test_023_if_false_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "023_if_false", input, output, canonical)
}
