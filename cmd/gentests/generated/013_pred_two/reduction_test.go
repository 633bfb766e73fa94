
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
func Test_013_pred_two_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "013_pred_two", input, output, canonical)
}
