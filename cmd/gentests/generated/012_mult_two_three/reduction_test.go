
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
func Test_012_mult_two_three_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "012_mult_two_three", input, output, canonical)
}
