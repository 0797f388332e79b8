package render

// cpkColors is the CPK palette; elements not listed are drawn pink.
var cpkColors = map[string]string{
	"Ar": "#00FFFF", "B": "#FA8072", "Ba": "#006400", "Be": "#006400",
	"Br": "#8B0000", "C": "#000000", "Ca": "#006400", "Cl": "#008000",
	"Cs": "#EE82EE", "F": "#008000", "Fe": "#FF8C00", "Fr": "#EE82EE",
	"H": "#FFFFFF", "He": "#00FFFF", "I": "#9400D3", "K": "#EE82EE",
	"Kr": "#00FFFF", "Li": "#EE82EE", "Mg": "#006400", "N": "#0000FF",
	"Na": "#EE82EE", "Ne": "#00FFFF", "O": "#FF0000", "P": "#FFA500",
	"Ra": "#006400", "Rb": "#EE82EE", "S": "#FFFF00", "Sr": "#006400",
	"Ti": "#808080", "Xe": "#00FFFF",
}

const cpkRest = "#FFC0CB"

func cpkColor(element string) string {
	if c, ok := cpkColors[element]; ok {
		return c
	}
	return cpkRest
}
