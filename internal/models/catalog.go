package models

// Sentinel filter values sent by clients to mean "no filter".
const (
	AllDistricts  = "All Districts"
	AllCategories = "All Categories"
)

// Districts lists every district listings can be placed in.
var Districts = []string{
	"Ariyalur", "Chengalpattu", "Chennai", "Coimbatore", "Cuddalore", "Dharmapuri",
	"Dindigul", "Erode", "Kallakurichi", "Kanchipuram", "Karur", "Krishnagiri",
	"Madurai", "Mayiladuthurai", "Nagapattinam", "Namakkal", "Nilgiris", "Perambalur",
	"Pudukkottai", "Ramanathapuram", "Ranipet", "Salem", "Sivaganga", "Tenkasi",
	"Thanjavur", "Theni", "Thoothukudi", "Tiruchirappalli", "Tirunelveli", "Tirupathur",
	"Tiruppur", "Tiruvallur", "Tiruvannamalai", "Tiruvarur", "Vellore", "Viluppuram", "Virudhunagar",
}

// Categories lists the service categories offered on the platform.
var Categories = []string{
	"Earth Movers",
	"Packers and Movers",
	"Lorry Services",
	"Bore Well",
	"Power Tools",
}
