package templates

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	merrors "github.com/strickvl/matcha/internal/errors"
	"github.com/strickvl/matcha/internal/output"
	"github.com/strickvl/matcha/internal/testutil"
)

func engineManifest() Manifest {
	return Manifest{
		RootFiles:         []string{".gitignore", ".terraform.lock.hcl"},
		RootPattern:       "*.tf",
		AllowedExtensions: []string{"tf", "yaml", "tpl"},
		Submodules:        []string{"aks", "storage", "empty_module"},
	}
}

// writeTemplateFixture builds a template source tree matching engineManifest.
func writeTemplateFixture(t *testing.T) string {
	t.Helper()
	src := t.TempDir()

	testutil.WriteFile(t, src, ".gitignore", "*.tfstate\n")
	testutil.WriteFile(t, src, ".terraform.lock.hcl", "# lock\n")
	testutil.WriteFile(t, src, "main.tf", "module \"all\" {}\n")
	testutil.WriteFile(t, src, "variables.tf", "variable \"location\" {}\n")
	testutil.WriteFile(t, src, "aks/main.tf", "resource \"aks\" {}\n")
	testutil.WriteFile(t, src, "aks/variables.tf", "variable \"prefix\" {}\n")
	testutil.WriteFile(t, src, "storage/main.tf", "resource \"storage\" {}\n")
	testutil.WriteFile(t, src, "storage/values.yaml", "replicas: 1\n")
	testutil.WriteFile(t, src, "storage/init.tpl", "{{ .Prefix }}\n")
	testutil.WriteFile(t, src, "storage/README.md", "not copied\n")

	return src
}

func testVariables() Variables {
	return Variables{Location: "uksouth", Prefix: "matcha", Password: "s3cr3t"}
}

// alwaysRebuild overrides any existing workspace without prompting.
func alwaysRebuild() ReuseDecider {
	return ReuseDeciderFunc(func(string) (bool, error) { return false, nil })
}

// snapshotTree maps every file below root to its content.
func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()
	tree := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		tree[rel] = testutil.ReadFile(t, path)
		return nil
	})
	require.NoError(t, err)
	return tree
}

func TestBuild_MaterializesFullTree(t *testing.T) {
	src := writeTemplateFixture(t)
	dest := filepath.Join(t.TempDir(), ".matcha", "infrastructure")

	var rec output.Recorder
	engine := NewEngine(engineManifest(), &rec, alwaysRebuild())

	result, err := engine.Build(testVariables(), src, dest)
	require.NoError(t, err)
	assert.Equal(t, dest, result.Destination)
	assert.False(t, result.Reused)

	tree := snapshotTree(t, dest)
	assert.Equal(t, map[string]string{
		".gitignore":          "*.tfstate\n",
		".terraform.lock.hcl": "# lock\n",
		"main.tf":             "module \"all\" {}\n",
		"variables.tf":        "variable \"location\" {}\n",
		filepath.Join("aks", "main.tf"):        "resource \"aks\" {}\n",
		filepath.Join("aks", "variables.tf"):   "variable \"prefix\" {}\n",
		filepath.Join("storage", "main.tf"):    "resource \"storage\" {}\n",
		filepath.Join("storage", "values.yaml"): "replicas: 1\n",
		filepath.Join("storage", "init.tpl"):   "{{ .Prefix }}\n",
		VariablesFileName:                      `{"location":"uksouth","prefix":"matcha","password":"s3cr3t"}`,
	}, tree)

	// A sub-module with no matching files still gets its directory.
	info, err := os.Stat(filepath.Join(dest, "empty_module"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestBuild_VariablesRoundTrip(t *testing.T) {
	src := writeTemplateFixture(t)
	dest := filepath.Join(t.TempDir(), "infra")

	engine := NewEngine(engineManifest(), &output.Recorder{}, alwaysRebuild())
	_, err := engine.Build(testVariables(), src, dest)
	require.NoError(t, err)

	var parsed map[string]string
	data := testutil.ReadFile(t, filepath.Join(dest, VariablesFileName))
	require.NoError(t, json.Unmarshal([]byte(data), &parsed))

	assert.Equal(t, map[string]string{
		"location": "uksouth",
		"prefix":   "matcha",
		"password": "s3cr3t",
	}, parsed)
}

func TestBuild_AbsentDestinationNeverConsultsDecider(t *testing.T) {
	src := writeTemplateFixture(t)
	dest := filepath.Join(t.TempDir(), "infra")

	decider := ReuseDeciderFunc(func(string) (bool, error) {
		t.Fatal("decider consulted for an absent destination")
		return false, nil
	})

	engine := NewEngine(engineManifest(), &output.Recorder{}, decider)
	_, err := engine.Build(testVariables(), src, dest)
	require.NoError(t, err)
}

func TestBuild_ReuseNeverMutates(t *testing.T) {
	src := writeTemplateFixture(t)
	dest := filepath.Join(t.TempDir(), "infra")

	engine := NewEngine(engineManifest(), &output.Recorder{}, alwaysRebuild())
	_, err := engine.Build(testVariables(), src, dest)
	require.NoError(t, err)

	// A file from a previous run that is not part of the template.
	testutil.WriteFile(t, dest, "terraform.tfstate", "state\n")
	before := snapshotTree(t, dest)

	reusing := NewEngine(engineManifest(), &output.Recorder{},
		ReuseDeciderFunc(func(string) (bool, error) { return true, nil }))

	result, err := reusing.Build(Variables{Location: "westeurope", Prefix: "other", Password: "other"}, src, dest)
	require.NoError(t, err)
	assert.True(t, result.Reused)

	// Nothing under the destination changed, including the variables file.
	assert.Equal(t, before, snapshotTree(t, dest))
}

func TestBuild_ReuseEmitsStepSuccess(t *testing.T) {
	src := writeTemplateFixture(t)
	dest := t.TempDir()

	var rec output.Recorder
	engine := NewEngine(engineManifest(), &rec,
		ReuseDeciderFunc(func(string) (bool, error) { return true, nil }))

	_, err := engine.Build(testVariables(), src, dest)
	require.NoError(t, err)

	events := rec.Events()
	last := events[len(events)-1]
	assert.Equal(t, output.EventStepSuccess, last.Kind)
	assert.Contains(t, last.Message, "reused")
}

func TestBuild_OverrideIsIdempotent(t *testing.T) {
	src := writeTemplateFixture(t)
	dest := filepath.Join(t.TempDir(), "infra")

	engine := NewEngine(engineManifest(), &output.Recorder{}, alwaysRebuild())

	_, err := engine.Build(testVariables(), src, dest)
	require.NoError(t, err)
	first := snapshotTree(t, dest)

	_, err = engine.Build(testVariables(), src, dest)
	require.NoError(t, err)
	second := snapshotTree(t, dest)

	assert.Equal(t, first, second)
}

func TestBuild_OverrideClearsStaleFiles(t *testing.T) {
	src := writeTemplateFixture(t)
	dest := filepath.Join(t.TempDir(), "infra")

	engine := NewEngine(engineManifest(), &output.Recorder{}, alwaysRebuild())
	_, err := engine.Build(testVariables(), src, dest)
	require.NoError(t, err)

	// A sub-module file from a superseded manifest version.
	stale := testutil.WriteFile(t, dest, "aks/superseded.tf", "old\n")

	_, err = engine.Build(testVariables(), src, dest)
	require.NoError(t, err)

	_, statErr := os.Stat(stale)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuild_EventOrderIsDeterministic(t *testing.T) {
	src := writeTemplateFixture(t)

	var rec output.Recorder
	engine := NewEngine(engineManifest(), &rec, alwaysRebuild())
	_, err := engine.Build(testVariables(), src, filepath.Join(t.TempDir(), "infra"))
	require.NoError(t, err)

	var messages []string
	for _, ev := range rec.Events() {
		messages = append(messages, ev.Message)
	}

	require.GreaterOrEqual(t, len(messages), 8)
	assert.Contains(t, messages[0], "Building configuration template")
	// Sub-module events arrive in manifest order.
	assert.Contains(t, messages[2], "aks module configuration was copied")
	assert.Contains(t, messages[3], "storage module configuration was copied")
	assert.Contains(t, messages[4], "empty_module module configuration was copied")
	assert.Contains(t, messages[len(messages)-1], "The configuration template was written to")
}

func TestBuild_MissingAuxiliaryFilePropagates(t *testing.T) {
	src := t.TempDir() // no .gitignore or lock file
	dest := filepath.Join(t.TempDir(), "infra")

	engine := NewEngine(engineManifest(), &output.Recorder{}, alwaysRebuild())
	_, err := engine.Build(testVariables(), src, dest)

	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestBuild_EmptyVariableRejected(t *testing.T) {
	src := writeTemplateFixture(t)

	engine := NewEngine(engineManifest(), &output.Recorder{}, alwaysRebuild())
	_, err := engine.Build(Variables{Location: "uksouth", Prefix: "matcha"}, src, t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}

func TestBuild_DestinationNotWritable(t *testing.T) {
	testutil.RequireRegularUser(t)

	src := writeTemplateFixture(t)
	parent := t.TempDir()
	require.NoError(t, os.Chmod(parent, 0o555))
	t.Cleanup(func() { _ = os.Chmod(parent, 0o755) })

	dest := filepath.Join(parent, "infra")

	engine := NewEngine(engineManifest(), &output.Recorder{}, alwaysRebuild())
	_, err := engine.Build(testVariables(), src, dest)

	require.Error(t, err)
	assert.ErrorIs(t, err, merrors.ErrPermission)
	assert.Contains(t, err.Error(), dest)

	// No partial workspace was left behind.
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}
