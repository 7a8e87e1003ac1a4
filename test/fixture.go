package test

import (
	"testing/fstest"
	"time"

	"github.com/salesboard/backend/internal/app/appconfig"
	"github.com/salesboard/backend/internal/app/appcontext"
)

const (
	chartCacheMaxAge = 5 * time.Minute
	adminKey         = "admin-secret"
)

// fixture is a small but complete data set. ACV range counts per quarter:
// 2023-Q4 = 34, 2024-Q1 = 41.
var fixture = map[string]string{
	"customer-type.json": `[
		{"Cust_Type":"New","count":10,"acv":100,"closed_fiscal_quarter":"2024-Q1"},
		{"Cust_Type":"Existing","count":19,"acv":200,"closed_fiscal_quarter":"2024-Q1"},
		{"Cust_Type":"New","count":8,"acv":80,"closed_fiscal_quarter":"2023-Q4"}
	]`,
	"account-industry.json": `[
		{"Acct_Industry":"Retail","query_key":"retail","count":1,"acv":10,"closed_fiscal_quarter":"2024-Q1","Total_Quantity":null}
	]`,
	"team.json": `[
		{"Team":"Europe","count":12,"acv":120,"closed_fiscal_quarter":"2024-Q1"}
	]`,
	"acv-range.json": `[
		{"ACV_Range":"<$20K","count":20,"acv":100000,"closed_fiscal_quarter":"2023-Q4"},
		{"ACV_Range":">=$200K","count":14,"acv":3000000,"closed_fiscal_quarter":"2023-Q4"},
		{"ACV_Range":"<$20K","count":25,"acv":150000,"closed_fiscal_quarter":"2024-Q1"},
		{"ACV_Range":">=$200K","count":16,"acv":3450000,"closed_fiscal_quarter":"2024-Q1"}
	]`,
}

func fixtureWithout(resources ...string) map[string]string {
	files := make(map[string]string, len(fixture))
	for name, content := range fixture {
		files[name] = content
	}
	for _, name := range resources {
		delete(files, name)
	}
	return files
}

func mapFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func testConfig() *appconfig.Config {
	return &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			ServiceAddress:            "localhost:0",
			TrustedProxies:            []string{"::1", "127.0.0.1"},
			CorsAllowOrigins:          "*",
			HTTPServerShutdownTimeout: time.Second,
			DataSourceURL:             "embed://",
			ChartCacheMaxAge:          chartCacheMaxAge,
			S3Region:                  "us-east-1",
			AdminKey:                  adminKey,
		},
		AppContext: appcontext.Declare(appcontext.EnvServer),
	}
}
