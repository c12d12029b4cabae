package cmd

// defaultBattery is the fixed inventory battery run against the array. All
// entries are read commands; sheet order in the report equals this order.
var defaultBattery = []string{
	"lssystem",
	"lsnodecanister",
	"lssystemstats",
	"lsnodestats",
	"lsvdisk",
	"lshost",
	"lshostcluster",
	"lshostvdiskmap",
	"lshostclustervolumemap",
	"lsvdiskaccess",
	"lsvdiskcopy",
	"lsportfc",
	"lsfcconsistgrp",
	"lsiogrp",
	"lsmdiskgrp",
	"lssystemip",
	"lspartnership",
	"lseventlog",
}

// battery returns the command list for this run: the manifest's commands
// when one was provided, the built-in battery otherwise.
func battery() ([]string, error) {
	if cfgManifest == "" {
		out := make([]string, len(defaultBattery))
		copy(out, defaultBattery)
		return out, nil
	}
	mf, err := loadManifest(cfgManifest)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(mf.Commands))
	for _, c := range mf.Commands {
		names = append(names, c.Command)
	}
	return names, nil
}
