package repo

import (
	"context"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/salesboard/backend/internal/app/appconfig"
	"github.com/salesboard/backend/internal/model"
	"github.com/salesboard/backend/internal/source"
)

type countingSource struct {
	source.Source
	reads int32
}

func (s *countingSource) Read(ctx context.Context, resource string) ([]byte, error) {
	atomic.AddInt32(&s.reads, 1)
	return s.Source.Read(ctx, resource)
}

func config(ttl time.Duration) *appconfig.Config {
	return &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{SourceCacheTTL: ttl}}
}

func memory(files map[string]string) *countingSource {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return &countingSource{Source: source.NewFS("mem", fsys)}
}

func TestCustomerTypeDecodesInStoredOrder(t *testing.T) {
	src := memory(map[string]string{
		"customer-type.json": `[
			{"Cust_Type":"New Customer","count":10,"acv":120000.5,"closed_fiscal_quarter":"2024-Q1"},
			{"Cust_Type":"Existing Customer","count":19,"acv":300000,"closed_fiscal_quarter":"2024-Q1"}
		]`,
	})

	records, err := NewCustomerType(src, config(0)).GetCustomerTypes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []*model.CustomerType{
		{CustomerType: "New Customer", Measures: model.Measures{Count: 10, ACV: 120000.5, FiscalQuarter: "2024-Q1"}},
		{CustomerType: "Existing Customer", Measures: model.Measures{Count: 19, ACV: 300000, FiscalQuarter: "2024-Q1"}},
	}, records)
}

func TestAccountIndustryOptionalColumns(t *testing.T) {
	src := memory(map[string]string{
		"account-industry.json": `[
			{"Acct_Industry":"Retail","count":1,"acv":5,"closed_fiscal_quarter":"2024-Q1","query_key":"Acct_Industry","Total_Quantity":null},
			{"Acct_Industry":"Construction","count":4,"acv":9,"closed_fiscal_quarter":"2024-Q1","Total_Quantity":12}
		]`,
	})

	records, err := NewAccountIndustry(src, config(0)).GetAccountIndustries(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Acct_Industry", records[0].QueryKey)
	assert.False(t, records[0].TotalQuantity.Valid)
	assert.Equal(t, null.FloatFrom(12), records[1].TotalQuantity)
}

func TestSourceUnavailable(t *testing.T) {
	t.Run("missing resource", func(t *testing.T) {
		_, err := NewTeam(memory(nil), config(0)).GetTeams(context.Background())
		assert.ErrorIs(t, err, source.ErrSourceUnavailable)
	})

	t.Run("unparsable resource", func(t *testing.T) {
		src := memory(map[string]string{"acv-range.json": `{"not":"an array"`})
		records, err := NewACVRange(src, config(0)).GetACVRanges(context.Background())
		assert.ErrorIs(t, err, source.ErrSourceUnavailable)
		assert.Nil(t, records)
	})
}

func TestEmptyResourceIsEmptyCollection(t *testing.T) {
	src := memory(map[string]string{"team.json": `null`})

	records, err := NewTeam(src, config(0)).GetTeams(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCaching(t *testing.T) {
	files := map[string]string{"team.json": `[{"Team":"Europe","count":12,"acv":1,"closed_fiscal_quarter":"2024-Q1"}]`}

	t.Run("ttl keeps decoded collection", func(t *testing.T) {
		src := memory(files)
		r := NewTeam(src, config(time.Minute))

		for i := 0; i < 3; i++ {
			_, err := r.GetTeams(context.Background())
			require.NoError(t, err)
		}
		assert.Equal(t, int32(1), atomic.LoadInt32(&src.reads))

		require.NoError(t, r.Flush())
		_, err := r.GetTeams(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&src.reads))
	})

	t.Run("zero ttl reads every time", func(t *testing.T) {
		src := memory(files)
		r := NewTeam(src, config(0))

		for i := 0; i < 3; i++ {
			_, err := r.GetTeams(context.Background())
			require.NoError(t, err)
		}
		assert.Equal(t, int32(3), atomic.LoadInt32(&src.reads))
	})
}
