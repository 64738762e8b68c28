package cmd

import (
	"path/filepath"
	"testing"

	"github.com/pseudomuto/poise/pkg/cmd/testutil"
	"github.com/pseudomuto/poise/pkg/export"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportCommand(t *testing.T) {
	f := testutil.NewFixture(t)
	seedProjects(f)

	path := filepath.Join(f.Dir, "out.xlsx")
	out, err := testutil.CaptureCommand(t, exportCmd(fixtureParams(f)), []string{"--out", path})
	require.NoError(t, err)
	require.Equal(t, "Exported 3 projects to "+path+".\n", out)

	wb, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, export.Header, rows[0])
	require.Equal(t, "Clinic", rows[1][1])
	require.Equal(t, "Mall", rows[3][1])
}

func TestExportCommand_Stdout(t *testing.T) {
	f := testutil.NewFixture(t)
	seedProjects(f)

	out, err := testutil.CaptureCommand(t, exportCmd(fixtureParams(f)), []string{"--out", "-"})
	require.NoError(t, err)

	// xlsx files are zip archives
	require.True(t, len(out) > 4)
	require.Equal(t, "PK\x03\x04", out[:4])
}

func TestExportCommand_Errors(t *testing.T) {
	f := testutil.NewFixture(t)

	err := testutil.RunCommand(t, exportCmd(fixtureParams(f)), []string{"--out", filepath.Join(f.Dir, "missing", "out.xlsx")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to save workbook")
	testutil.RequireNoFile(t, filepath.Join(f.Dir, "missing", "out.xlsx"))
}
