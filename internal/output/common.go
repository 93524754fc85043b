package output

// TableHeader is the canonical header row for table output.
var TableHeader = []string{"NAME", "VALUE", "TYPE", "TIMESTAMP"}
