package converter

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/morningowl/dicomcraft/dicom"
	"github.com/morningowl/dicomcraft/filesystem"
	"github.com/morningowl/dicomcraft/log/logtest"
)

type tester struct {
	*Converter
	sink  *MockSink
	clock clockwork.FakeClock
	fs    afero.Fs
	out   *bytes.Buffer
}

func newTester(tb testing.TB, opts ...Opt) *tester {
	tb.Helper()
	t := &tester{
		sink:  NewMockSink(gomock.NewController(tb)),
		clock: clockwork.NewFakeClock(),
		fs:    afero.NewMemMapFs(),
		out:   &bytes.Buffer{},
	}
	opts = append([]Opt{
		WithLogger(logtest.New(tb)),
		WithClock(t.clock),
		WithReporter(NewReporter(t.out)),
		WithFs(t.fs),
	}, opts...)
	t.Converter = New(t.sink, opts...)
	return t
}

func dicomPayload() []byte {
	data := make([]byte, dicom.PreambleSize)
	data = append(data, dicom.Magic...)
	return append(data, 0x02, 0x00, 0x00, 0x00)
}

func TestConvert(t *testing.T) {
	t.Run("hello", func(t *testing.T) {
		tr := newTester(t)
		tr.sink.EXPECT().WriteFile(gomock.Any(), "out.bin", []byte("Hello")).
			DoAndReturn(func(context.Context, string, []byte) (string, error) {
				tr.clock.Advance(2 * time.Second)
				return "/studies/out.bin", nil
			})

		res, err := tr.Convert(context.Background(), "SGVsbG8=", "out.bin")
		require.NoError(t, err)
		want := &Result{Location: "/studies/out.bin", InputLength: 8, Size: 5, Elapsed: 2 * time.Second}
		if diff := cmp.Diff(want, res); diff != "" {
			t.Errorf("result mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, "decoding base64 payload (length: 8 chars)\n"+
			"decoded 5 bytes\n"+
			"✅ file written: /studies/out.bin\n"+
			"📁 file size: 5 bytes\n", tr.out.String())
	})

	t.Run("malformed input never reaches the sink", func(t *testing.T) {
		tr := newTester(t)
		before := testutil.ToFloat64(conversions.WithLabelValues(KindDecode.String()))

		res, err := tr.Convert(context.Background(), "not base64!!", "out.bin")
		require.Nil(t, res)
		require.ErrorIs(t, err, ErrDecode)
		require.Equal(t, KindDecode, KindOf(err))
		require.NotContains(t, tr.out.String(), "decoded")
		require.Equal(t, before+1, testutil.ToFloat64(conversions.WithLabelValues(KindDecode.String())))
		require.Equal(t, float64(tr.clock.Now().Unix()),
			testutil.ToFloat64(lastConversion.WithLabelValues(KindDecode.String())))
	})

	t.Run("sink failure", func(t *testing.T) {
		tr := newTester(t)
		tr.sink.EXPECT().WriteFile(gomock.Any(), "/ro/out.bin", gomock.Any()).Return("", fs.ErrPermission)

		_, err := tr.Convert(context.Background(), "SGVsbG8=", "/ro/out.bin")
		require.ErrorIs(t, err, ErrWrite)
		require.ErrorIs(t, err, fs.ErrPermission)

		var cerr *Error
		require.True(t, errors.As(err, &cerr))
		require.Equal(t, "/ro/out.bin", cerr.Path)
		require.NotContains(t, tr.out.String(), "file written")
	})

	t.Run("cancelled context", func(t *testing.T) {
		tr := newTester(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := tr.Convert(ctx, "SGVsbG8=", "out.bin")
		require.ErrorIs(t, err, ErrWrite)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("dicom check rejects other payloads", func(t *testing.T) {
		tr := newTester(t, WithDICOMCheck(true))

		_, err := tr.Convert(context.Background(), "SGVsbG8=", "out.dcm")
		require.ErrorIs(t, err, ErrFormat)
		require.ErrorIs(t, err, dicom.ErrTooShort)
	})

	t.Run("dicom check accepts part 10", func(t *testing.T) {
		tr := newTester(t, WithDICOMCheck(true))
		payload := dicomPayload()
		tr.sink.EXPECT().WriteFile(gomock.Any(), "out.dcm", payload).Return("/out.dcm", nil)

		res, err := tr.Convert(context.Background(), base64Std(payload), "out.dcm")
		require.NoError(t, err)
		require.Equal(t, len(payload), res.Size)
	})
}

func TestRun(t *testing.T) {
	t.Run("file with trailing newline", func(t *testing.T) {
		tr := newTester(t)
		require.NoError(t, afero.WriteFile(tr.fs, "/payload.txt", []byte("SGVsbG8=\n"), 0o600))
		tr.sink.EXPECT().WriteFile(gomock.Any(), "out.bin", []byte("Hello")).Return("/out.bin", nil)

		res, err := tr.Run(context.Background(), Source{Inline: "placeholder", File: "/payload.txt"}, "out.bin")
		require.NoError(t, err)
		require.Equal(t, 5, res.Size)
		require.Equal(t, 8, res.InputLength)
		require.Contains(t, tr.out.String(), "reading base64 payload from /payload.txt\n")
	})

	t.Run("missing source file", func(t *testing.T) {
		tr := newTester(t)
		before := testutil.ToFloat64(conversions.WithLabelValues(KindSourceNotFound.String()))

		_, err := tr.Run(context.Background(), Source{File: "missing.txt"}, "out.bin")
		require.ErrorIs(t, err, ErrSourceNotFound)
		require.NotContains(t, tr.out.String(), "decoding")
		require.Equal(t, before+1, testutil.ToFloat64(conversions.WithLabelValues(KindSourceNotFound.String())))
	})

	t.Run("stdin", func(t *testing.T) {
		tr := newTester(t, WithStdin(bytes.NewBufferString("SGVsbG8=\n")))
		tr.sink.EXPECT().WriteFile(gomock.Any(), "out.bin", []byte("Hello")).Return("/out.bin", nil)

		_, err := tr.Run(context.Background(), Source{File: StdinPath}, "out.bin")
		require.NoError(t, err)
		require.Contains(t, tr.out.String(), "reading base64 payload from stdin\n")
	})

	t.Run("inline", func(t *testing.T) {
		tr := newTester(t)
		tr.sink.EXPECT().WriteFile(gomock.Any(), "out.bin", []byte("Hello")).Return("/out.bin", nil)
		before := testutil.ToFloat64(conversions.WithLabelValues(resultOK))

		_, err := tr.Run(context.Background(), Source{Inline: "SGVsbG8="}, "out.bin")
		require.NoError(t, err)
		require.NotContains(t, tr.out.String(), "reading")
		require.Equal(t, before+1, testutil.ToFloat64(conversions.WithLabelValues(resultOK)))
		require.Equal(t, float64(tr.clock.Now().Unix()), testutil.ToFloat64(lastConversion.WithLabelValues(resultOK)))
	})
}

func TestConvertToFilesystem(t *testing.T) {
	fsys := afero.NewMemMapFs()
	c := New(filesystem.NewFsWriter(fsys, 0o644))

	res, err := c.Convert(context.Background(), "SGVsbG8=", "/studies/out.bin")
	require.NoError(t, err)
	require.Equal(t, "/studies/out.bin", res.Location)

	data, err := afero.ReadFile(fsys, res.Location)
	require.NoError(t, err)
	require.Equal(t, []byte("Hello"), data)
	require.Len(t, data, res.Size)

	_, err = c.Convert(context.Background(), "not base64!!", "/studies/other.bin")
	require.ErrorIs(t, err, ErrDecode)
	exists, err := afero.Exists(fsys, "/studies/other.bin")
	require.NoError(t, err)
	require.False(t, exists)
}
