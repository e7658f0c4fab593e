package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"semaudit.dev/pkg/semaudit/internal/domain"
	m "semaudit.dev/pkg/semaudit/internal/model"
)

func TestPairCmd_PassesArgs(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd, _ := newTestRootCmd(newPairCmd())

	mockWorkflow.EXPECT().Pair(mock.Anything, mock.MatchedBy(func(args domain.PairArgs) bool {
		return args.Before == m.Path("a") &&
			args.After == m.Path("b") &&
			assert.ObjectsAreEqual([]string{"tests/**"}, args.Exclude)
	})).Return(nil)

	cmd.SetArgs([]string{"pair", "--exclude", "tests/**", "a", "b"})
	require.NoError(t, cmd.Execute())
}

func TestPairCmd_Fixtures(t *testing.T) {
	isolateLogs(t)

	cmd, out := newTestRootCmd(newPairCmd())
	cmd.SetArgs([]string{"pair", shopBefore, shopAfter})
	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.Contains(t, output, "lib/Mailer.php -> src/Mail/Mailer.php")
	assert.Contains(t, output, "src/Tax.php")
	assert.Contains(t, output, "src/Legacy.php")
	assert.Contains(t, output, "PAIRED 3")
	assert.NotContains(t, output, "Lib.php")
}
