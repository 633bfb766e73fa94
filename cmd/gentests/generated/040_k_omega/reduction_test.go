
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
func Test_040_k_omega_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "040_k_omega", input, output, canonical)
}
