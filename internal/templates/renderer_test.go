package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContractTypes(t *testing.T) {
	data := Data{
		Name:         "orders",
		PascalName:   "Orders",
		CamelName:    "orders",
		ConstantName: "ORDERS",
		Type:         "contract",
	}

	out, err := Render("contract/types.ts.tmpl", data)

	require.NoError(t, err)
	assert.Contains(t, string(out), "export interface Orders {")
	assert.Contains(t, string(out), "ORDERS_ENTITY = 'orders'")
}

func TestRenderProjectJSONTags(t *testing.T) {
	data := Data{
		Name:    "orders",
		TagList: []string{"type:contract", "scope:orders"},
	}

	out, err := Render("common/project.json.tmpl", data)

	require.NoError(t, err)
	assert.Contains(t, string(out), `"tags": ["type:contract", "scope:orders"]`)
}

func TestRenderProviderUsesExternalService(t *testing.T) {
	data := Data{
		Name:            "stripe",
		PascalName:      "Stripe",
		ExternalService: "stripe",
	}

	out, err := Render("provider/provider.ts.tmpl", data)

	require.NoError(t, err)
	assert.Contains(t, string(out), "https://api.stripe.com")
}

func TestRenderUnknownAsset(t *testing.T) {
	_, err := Render("contract/missing.ts.tmpl", Data{})
	assert.Error(t, err)
}

func TestListAssets(t *testing.T) {
	assets, err := List("contract")

	require.NoError(t, err)
	assert.Contains(t, assets, "contract/types.ts.tmpl")
	assert.Contains(t, assets, "contract/schema.ts.tmpl")
}

func TestAllEmbeddedAssetsParse(t *testing.T) {
	data := Data{
		Name: "sample", PascalName: "Sample", CamelName: "sample",
		ConstantName: "SAMPLE", Type: "feature",
		ExternalService: "svc", PascalExternalService: "Svc",
		TagList: []string{"a"},
	}

	for _, dir := range []string{"common", "contract", "data-access", "feature", "infra", "provider", "domain", "workspace"} {
		assets, err := List(dir)
		require.NoError(t, err, dir)
		require.NotEmpty(t, assets, dir)

		for _, asset := range assets {
			_, err := Render(asset, data)
			assert.NoError(t, err, asset)
		}
	}
}
