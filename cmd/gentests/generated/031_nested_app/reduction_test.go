
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
func Test_031_nested_app_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "031_nested_app", input, output, canonical)
}
