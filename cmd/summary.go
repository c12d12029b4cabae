package cmd

import "fmt"

// summaryCommand is the one command whose result gets a dedicated typed
// transform instead of the generic record-to-rows conversion.
const summaryCommand = "lssystem"

// summaryColumn maps a display column name to the lssystem field it reads.
type summaryColumn struct {
	column string
	field  string
}

// summaryColumns is the fixed column set of the system summary sheet, in
// report order.
var summaryColumns = []summaryColumn{
	{"Product name", "product_name"},
	{"Product model", "name"},
	{"Serial", "id"},
	{"Code level", "code_level"},
	{"Console IP", "console_IP"},
	{"Contact organization", "email_organization"},
	{"Contact name", "email_contact"},
	{"Contact email", "email_reply"},
	{"Contact phone", "email_contact_primary"},
	{"Auth service", "auth_service_configured"},
	{"Auth service type", "auth_service_type"},
	{"Callhome", "enhanced_callhome"},
	{"Callhome censor", "censor_callhome"},
	{"Copy rate", "relationship_bandwidth_limit"},
	{"Local raw capacity", "total_drive_raw_capacity"},
	{"Physical total", "physical_capacity"},
	{"Physical free", "physical_free_capacity"},
	{"Easy tier", "easy_tier_acceleration"},
	{"Compression", "compression_active"},
	{"Compressed virtual", "compression_virtual_capacity"},
	{"Compressed capacity", "compression_compressed_capacity"},
	{"Uncompressed capacity", "compression_uncompressed_capacity"},
	{"Deduplication savings", "deduplication_capacity_saving"},
	{"Cache prefetch", "cache_prefetch"},
}

// buildSummarySheet flattens the single lssystem record into one data row
// with the fixed column set, then appends two dynamic columns per reported
// tier: {tier}_total and {tier}_free. Different models and code levels
// report different tiers.
func buildSummarySheet(result commandResult) (*sheet, error) {
	if len(result) == 0 {
		return nil, fmt.Errorf("%s returned no record", summaryCommand)
	}
	rec := result[0]

	s := &sheet{name: summaryCommand}
	row := make([]any, 0, len(summaryColumns))
	for _, col := range summaryColumns {
		v, _ := rec.get(col.field)
		s.header = append(s.header, col.column)
		row = append(row, cellValue(v))
	}

	tiers, _ := rec.get("tiers")
	if list, ok := tiers.([]any); ok {
		for _, entry := range list {
			tier, ok := entry.(*record)
			if !ok {
				continue
			}
			name, _ := tier.get("tier")
			tierName, ok := name.(string)
			if !ok || tierName == "" {
				continue
			}
			total, _ := tier.get("tier_capacity")
			free, _ := tier.get("tier_free_capacity")
			s.header = append(s.header, tierName+"_total", tierName+"_free")
			row = append(row, cellValue(total), cellValue(free))
		}
	}

	s.rows = [][]any{row}
	return s, nil
}
