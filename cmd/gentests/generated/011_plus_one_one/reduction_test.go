
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
func Test_011_plus_one_one_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "011_plus_one_one", input, output, canonical)
}
