package manifest_test

import (
	"testing"

	"github.com/cratedock/cratedock/internal/adapters/manifest"
	"github.com/cratedock/cratedock/internal/core/domain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestRenderChecksumTable(t *testing.T) {
	rows := []domain.ChecksumRow{
		{Name: "serde", Checksum: "ce31e24b01e1e524df96f1c2fdd054405f8d7376249a5110886fb4b658484789"},
		{Name: "aho-corasick", Checksum: "1e37cfd5e7657ada45f742d6e99ca5788580b5c529dc78faf11ece6dc702656f"},
		{Name: "memchr", Checksum: "308cc39be01b73d0d18f82a0e7b2a3df85245f84af96fdddc5d202d27e47b86a"},
	}

	g := goldie.New(t)
	g.Assert(t, "checksum_table", manifest.RenderChecksumTable(rows))
}

func TestRenderChecksumTable_Deterministic(t *testing.T) {
	rows := []domain.ChecksumRow{
		{Name: "a", Checksum: "aa"},
		{Name: "longer-name", Checksum: "bb"},
	}

	first := manifest.RenderChecksumTable(rows)
	second := manifest.RenderChecksumTable(rows)
	assert.Equal(t, first, second)
}

func TestRenderChecksumTable_Empty(t *testing.T) {
	assert.Empty(t, manifest.RenderChecksumTable(nil))
}

func TestRenderLicenseList(t *testing.T) {
	ids := []string{"MIT", "Apache-2.0", "MIT", domain.UnknownLicense}

	g := goldie.New(t)
	g.Assert(t, "license_list", manifest.RenderLicenseList(ids))
}

func TestRenderLicenseList_DoesNotMutateInput(t *testing.T) {
	ids := []string{"MIT", "Apache-2.0"}

	_ = manifest.RenderLicenseList(ids)
	assert.Equal(t, []string{"MIT", "Apache-2.0"}, ids)
}

func TestRenderLicenseList_Empty(t *testing.T) {
	assert.Empty(t, manifest.RenderLicenseList(nil))
}
