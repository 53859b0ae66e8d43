package seed

import "github.com/dmitrijs2005/sparekeeper/internal/models"

type categorySeed struct {
	Name        string
	Type        models.CategoryType
	Description string
}

// Catalogue is the fixed set of categories every database carries.
var Catalogue = []categorySeed{
	{"Bolts", models.CategoryMechanical, "Various bolt sizes and types"},
	{"Nuts", models.CategoryMechanical, "Hex nuts, lock nuts, wing nuts"},
	{"Washers", models.CategoryMechanical, "Flat, spring, and lock washers"},
	{"Screws", models.CategoryMechanical, "Machine screws, wood screws, self-tapping"},
	{"Bearings", models.CategoryMechanical, "Ball bearings, roller bearings"},
	{"Gears", models.CategoryMechanical, "Spur gears, helical gears"},
	{"Springs", models.CategoryMechanical, "Compression, tension, torsion springs"},
	{"Seals", models.CategoryMechanical, "O-rings, gaskets, oil seals"},
	{"Pins", models.CategoryMechanical, "Dowel pins, roll pins, cotter pins"},
	{"Clips", models.CategoryMechanical, "Retaining clips, circlips, snap rings"},
	{"Chains", models.CategoryMechanical, "Roller chains, drive chains, chain links"},

	{"Pipes", models.CategoryPiping, "Steel, PVC, copper pipes"},
	{"Valves", models.CategoryPiping, "Ball valves, gate valves, check valves"},
	{"Fittings", models.CategoryPiping, "Elbows, tees, couplings"},
	{"Clamps", models.CategoryPiping, "Pipe clamps, hose clamps"},
	{"Hoses", models.CategoryPiping, "Hydraulic, pneumatic, water hoses"},
	{"Flanges", models.CategoryPiping, "Weld neck, slip-on, blind flanges"},

	{"Electrical", models.CategoryElectrical, "General electrical components and parts"},
	{"Wires", models.CategoryElectrical, "Copper wires, cables"},
	{"Circuit Breakers", models.CategoryElectrical, "MCBs, MCCBs, RCCBs"},
	{"Switches", models.CategoryElectrical, "Toggle, push button, limit switches"},
	{"Relays", models.CategoryElectrical, "Control relays, contactors"},
	{"Connectors", models.CategoryElectrical, "Terminal blocks, wire connectors"},
	{"Fuses", models.CategoryElectrical, "Cartridge, blade, resettable fuses"},
	{"Motors", models.CategoryElectrical, "AC motors, DC motors, servo motors"},

	{"General", models.CategorySpecialty, "General purpose and miscellaneous parts"},
	{"Pumps", models.CategorySpecialty, "Centrifugal, positive displacement pumps"},
	{"Hydraulics", models.CategorySpecialty, "Hydraulic cylinders, power units"},
	{"Pneumatics", models.CategorySpecialty, "Air cylinders, valves, FRLs"},
	{"Filters", models.CategorySpecialty, "Oil, air, water filters"},
	{"Sensors", models.CategorySpecialty, "Proximity, temperature, pressure sensors"},
	{"PLCs", models.CategorySpecialty, "Programmable logic controllers"},
	{"Drives", models.CategorySpecialty, "VFDs, servo drives"},
}

type userSeed struct {
	ServiceNumber string
	Name          string
	Password      string
	Role          models.Role
}

// DefaultUsers are created on an empty database. Operators are expected to
// change these passwords.
var DefaultUsers = []userSeed{
	{"ADMIN001", "System Administrator", "admin123", models.RoleAdmin},
	{"EMP001", "John Editor", "editor123", models.RoleEditor},
	{"EMP002", "Jane Viewer", "user123", models.RoleUser},
}

type partSeed struct {
	Name        string
	PartNumber  string
	BoxNumber   string
	Quantity    int
	Category    string
	MinQuantity int
}

var SampleParts = []partSeed{
	{"M8x30 Hex Bolt", "BLT-M8-30", "A1-01", 150, "Bolts", 50},
	{"M10x50 Hex Bolt", "BLT-M10-50", "A1-02", 80, "Bolts", 30},
	{"M8 Hex Nut", "NUT-M8", "A2-01", 200, "Nuts", 100},
	{"M8 Lock Washer", "WSH-M8-LK", "A3-01", 3, "Washers", 50},
	{"6205 Ball Bearing", "BRG-6205", "B1-01", 12, "Bearings", 5},
	{"6308 Ball Bearing", "BRG-6308", "B1-02", 0, "Bearings", 5},

	{`1" Ball Valve`, "VLV-BL-1", "C1-01", 8, "Valves", 5},
	{`2" Gate Valve`, "VLV-GT-2", "C1-02", 4, "Valves", 3},
	{`1" 90° Elbow`, "FIT-ELB-1", "C2-01", 25, "Fittings", 10},
	{`1/2" Hydraulic Hose 2m`, "HSE-HYD-05-2", "C3-01", 6, "Hoses", 5},

	{"20A Circuit Breaker", "CB-20A", "D1-01", 15, "Circuit Breakers", 5},
	{"Limit Switch", "SW-LMT-01", "D2-01", 10, "Switches", 5},
	{"24V Control Relay", "RLY-24V", "D3-01", 20, "Relays", 10},
	{"10A Fuse", "FUS-10A", "D4-01", 2, "Fuses", 20},

	{"Oil Filter Element", "FLT-OIL-01", "E1-01", 8, "Filters", 5},
	{"Proximity Sensor NPN", "SNS-PRX-NPN", "E2-01", 6, "Sensors", 5},
	{`Air Filter 1/4"`, "FLT-AIR-025", "E1-02", 0, "Filters", 5},
	{"Pneumatic Cylinder 50x100", "CYL-PN-50-100", "E3-01", 3, "Pneumatics", 2},
}
