package loader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/modfactory/internal/factory"
)

func TestBindSymbol(t *testing.T) {
	t.Parallel()

	fn := func(className, _ string) any { return "fn:" + className }
	var fnVar = fn
	var nilFnVar func(string, string) any
	var mf factory.ModuleFactory = factory.Func(func(className, _ string) any { return "mf:" + className })
	var nilMF factory.ModuleFactory

	testCases := []struct {
		name    string
		sym     any
		want    any
		wantErr bool
	}{
		{name: "function", sym: fn, want: "fn:A"},
		{name: "function variable", sym: &fnVar, want: "fn:A"},
		{name: "factory variable", sym: &mf, want: "mf:A"},
		{name: "factory value", sym: mf, want: "mf:A"},
		{name: "nil function variable", sym: &nilFnVar, wantErr: true},
		{name: "nil factory variable", sym: &nilMF, wantErr: true},
		{name: "wrong type", sym: 42, wantErr: true},
		{name: "wrong signature", sym: func(string) any { return nil }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f, err := bindSymbol(tc.sym, "/lib/x.so", DefaultSymbol)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrBadSymbol))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, f.AttemptCreate("A", "IA"))
		})
	}
}
