package encode_test

import (
	"testing"

	"github.com/mewkiz/popvcf/encode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, state *encode.State, lines string) string {
	t.Helper()
	sc := encode.NewScanner(state)
	buf := []byte(lines)
	out, fieldBegin, err := sc.Scan(buf, len(buf), nil)
	require.NoError(t, err)
	assert.Equal(t, len(buf), fieldBegin, "input must end on a field terminator")
	return string(out)
}

func TestHeaderPassthrough(t *testing.T) {
	state := encode.New(false)
	in := "##fileformat=VCFv4.2\n#CHROM\tPOS\tID\n"
	assert.Equal(t, in, scanAll(t, state, in))
}

func TestNoDuplicates(t *testing.T) {
	state := encode.New(false)
	in := siteData("chr1", "100") + "0/0\t0/1\n"
	got := scanAll(t, state, in)
	assert.Equal(t, siteData("chr1", "100")+"0/0\t0/1\n", got)
}

func TestIntraLineDuplicate(t *testing.T) {
	state := encode.New(false)
	in := siteData("chr1", "100") + "0/1\t1/1\t0/1\n"
	got := scanAll(t, state, in)
	assert.Equal(t, siteData("chr1", "100")+"0/1\t1/1\t:\n", got)
}

func TestCrossLineDuplicateSameColumn(t *testing.T) {
	state := encode.New(false)
	in := siteData("chr1", "100") + "0/0\t0/1\n" + siteData("chr1", "200") + "0/0\t1/1\n"
	got := scanAll(t, state, in)
	want := siteData("chr1", "100") + "0/0\t0/1\n" + siteData("chr1", "200") + "%:\t1/1\n"
	assert.Equal(t, want, got)
}

func TestCrossLineDuplicateDifferentColumn(t *testing.T) {
	state := encode.New(false)
	in := siteData("chr1", "100") + "0/0\t0/1\n" + siteData("chr1", "200") + "0/1\t1/1\n"
	got := scanAll(t, state, in)
	want := siteData("chr1", "100") + "0/0\t0/1\n" + siteData("chr1", "200") + "%;\t1/1\n"
	assert.Equal(t, want, got)
}

func TestNoPreviousLineDisablesCrossLineRefs(t *testing.T) {
	state := encode.New(true)
	in := siteData("chr1", "100") + "0/0\t0/1\n" + siteData("chr1", "200") + "0/0\t1/1\n"
	got := scanAll(t, state, in)
	want := siteData("chr1", "100") + "0/0\t0/1\n" + siteData("chr1", "200") + "0/0\t1/1\n"
	assert.Equal(t, want, got)
}

func TestFarApartPositionsDoNotShareBackReferences(t *testing.T) {
	state := encode.New(false)
	in := siteData("chr1", "100") + "0/0\t0/1\n" + siteData("chr1", "50000") + "0/0\t1/1\n"
	got := scanAll(t, state, in)
	want := siteData("chr1", "100") + "0/0\t0/1\n" + siteData("chr1", "50000") + "0/0\t1/1\n"
	assert.Equal(t, want, got)
}

func TestDifferentContigDoesNotShareBackReferences(t *testing.T) {
	state := encode.New(false)
	in := siteData("chr1", "100") + "0/0\t0/1\n" + siteData("chr2", "100") + "0/0\t1/1\n"
	got := scanAll(t, state, in)
	want := siteData("chr1", "100") + "0/0\t0/1\n" + siteData("chr2", "100") + "0/0\t1/1\n"
	assert.Equal(t, want, got)
}

func TestReservedByteRejected(t *testing.T) {
	state := encode.New(false)
	sc := encode.NewScanner(state)
	in := []byte(siteData("chr1", "100") + "$bad\n")
	_, _, err := sc.Scan(in, len(in), nil)
	assert.ErrorIs(t, err, encode.ErrReservedByte)
}

func siteData(chrom, pos string) string {
	return chrom + "\t" + pos + "\t.\tA\tT\t.\t.\t.\tGT\t"
}
