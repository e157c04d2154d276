package cix

import (
	"strings"

	"github.com/tmelzer/cixforge/pkg/config"
	"github.com/tmelzer/cixforge/pkg/layout"
	"github.com/tmelzer/cixforge/pkg/machining"
)

// Macro identifier counters start here. GEOTEXT and ROUTG ids count
// independently, one step per diameter row, scoped to a single Render call.
const firstMacroID = 1001

// Render serializes a drill-test program for the given tool selection.
//
// Blocks are emitted in fixed order: the ID header, the MAINDATA panel block,
// one GEOTEXT/ROUTG/ENDPATH label triple per diameter row (ascending), then
// one BG drill block per hole in layout order. The input grouping is never
// reordered or deduplicated; repeated spindles produce repeated blocks.
//
// Render is pure. Writing the document to disk is the pipeline's job.
func Render(groups map[float64][]int, lay layout.Layout, cfg config.Config) string {
	var w writer

	width, height := panelSize(lay, cfg)

	writeHeader(&w)
	writeMainData(&w, width, height, cfg.PanelThickness)

	textID := firstMacroID
	routgID := firstMacroID
	for _, dia := range layout.Diameters(groups) {
		rowY, ok := lay.RowY(dia)
		if !ok {
			continue
		}
		label := Num(dia) + "mm - " + itoa(len(groups[dia]))
		writeLabel(&w, textID, label, lay.LabelX, rowY)
		writeEngrave(&w, routgID, textID, cfg)
		writeEndPath(&w)
		textID++
		routgID++
	}

	for _, pos := range lay.Positions {
		depth := machining.EffectiveDepth(cfg.Depth, pos.Diameter, cfg.DepthLimits, 0)
		writeDrill(&w, pos, depth, cfg.DrillSpeed)
	}

	return w.String()
}

func panelSize(lay layout.Layout, cfg config.Config) (width, height float64) {
	if !cfg.AutoSizePanel {
		return cfg.ManualWidth, cfg.ManualHeight
	}
	return lay.Bounds.Width() + 2*cfg.PanelMargin, lay.Bounds.Height() + 2*cfg.PanelMargin
}

func writeHeader(w *writer) {
	w.line("BEGIN ID CID3")
	w.line("\tREL= 5.0")
	w.line("END ID")
	w.line(" ")
}

// writeMainData emits the panel block. Everything past LPZ is a fixed machine
// default for the Rover controllers and is not user-configurable.
func writeMainData(w *writer, width, height, thickness float64) {
	w.line("BEGIN MAINDATA")
	w.line("\tLPX=%s", Num(width))
	w.line("\tLPY=%s", Num(height))
	w.line("\tLPZ=%s", Num(thickness))
	w.line("\tORLST=\"1\"")
	w.line("\tSIMMETRY=1")
	w.line("\tTLCHK=0")
	w.line("\tTOOLING=\"\"")
	w.line("\tCUSTSTR=$B$KBsExportToNcRoverNET.XncExtraPanelData$V\"\"")
	w.line("\tFCN=1.000000")
	w.line("\tXCUT=0")
	w.line("\tYCUT=0")
	w.line("\tJIGTH=0")
	w.line("\tCKOP=0")
	w.line("\tUNIQUE=0")
	w.line("\tMATERIAL=\"wood\"")
	w.line("\tPUTLST=\"\"")
	w.line("\tOPPWKRS=0")
	w.line("\tUNICLAMP=0")
	w.line("\tCHKCOLL=0")
	w.line("\tWTPIANI=0")
	w.line("\tCOLLTOOL=0")
	w.line("\tCALCEDTH=0")
	w.line("\tENABLELABEL=0")
	w.line("\tLOCKWASTE=0")
	w.line("\tLOADEDGEOPT=0")
	w.line("\tITLTYPE=0")
	w.line("\tRUNPAV=0")
	w.line("\tFLIPEND=0")
	w.line("END MAINDATA")
	w.blank()
}

// writeLabel emits the GEOTEXT macro carrying a row's engraved label text.
func writeLabel(w *writer, id int, text string, x, y float64) {
	w.beginMacro("GEOTEXT")
	w.paramStr("LAY", "Layer 0")
	w.paramStr("ID", geoID(id))
	w.param("SIDE", "0")
	w.paramStr("CRN", "2")
	w.param("RTY", "2")
	w.param("NRP", "0")
	w.param("DX", "0")
	w.param("DY", "0")
	w.paramStr("TXT", text)
	w.paramNum("X", x)
	w.paramNum("Y", y)
	w.param("Z", "0")
	w.param("ALN", "1")
	w.param("ANG", "0")
	w.param("VRS", "0")
	w.param("ACC", "0.1")
	w.param("CIR", "0")
	w.param("RDS", "0")
	w.param("PST", "0")
	w.paramStr("FNT", "Arial")
	w.param("SZE", "8")
	w.param("BOL", "0")
	w.param("ITL", "0")
	w.param("UDL", "0")
	w.param("STR", "0")
	w.param("WGH", "1")
	w.param("CHS", "0")
	w.endMacro()
}

// writeEngrave emits the ROUTG macro that routs the label identified by
// textID with the configured engraving tool.
func writeEngrave(w *writer, id, textID int, cfg config.Config) {
	w.beginMacro("ROUTG")
	w.paramStr("LAY", "Layer 0")
	w.paramStr("ID", routgMacroID(id))
	w.paramStr("GID", geoID(textID))
	w.paramStr("SIL", "")
	w.param("Z", "0")
	w.paramNum("DP", cfg.EngravingDepth)
	w.param("DIA", "0")
	w.param("THR", "0")
	w.param("RV", "0")
	w.param("CRC", "0")
	w.param("CKA", "3")
	w.param("AZ", "0")
	w.param("AR", "0")
	w.param("OPT", "1")
	w.param("RSP", "0")
	w.param("IOS", "0")
	w.param("WSP", "0")
	w.param("DSP", "0")
	w.param("IMS", "0")
	w.param("VTR", "1")
	w.param("DVR", "0")
	w.param("INCSTP", "0")
	w.param("OTR", "1")
	w.param("SVR", "0")
	w.param("COF", "0")
	w.param("DOF", "0")
	w.param("TIN", "0")
	w.param("CIN", "1")
	w.param("AIN", "90")
	w.param("GIN", "0")
	w.param("TLI", "0")
	w.param("TQI", "0")
	w.param("TBI", "0")
	w.param("DIN", "0")
	w.param("TOU", "0")
	w.param("COU", "1")
	w.param("AOU", "90")
	w.param("GOU", "0")
	w.param("TBO", "0")
	w.param("TLO", "0")
	w.param("TQO", "0")
	w.param("DOU", "0")
	w.param("PRP", "100")
	w.param("SDS", "0")
	w.param("SDSF", "2000")
	w.param("UDT", "0")
	w.paramStr("TDT", "")
	w.param("DDT", "5")
	w.param("SDT", "0")
	w.param("IDT", "20")
	w.param("FDT", "80")
	w.param("RDT", "60")
	w.param("CRR", "0")
	w.param("GIP", "1")
	w.param("OVM", "0")
	w.param("SWI", "0")
	w.param("BLW", "0")
	w.param("TOS", "1")
	w.paramStr("TNM", strings.ToUpper(cfg.EngravingTool))
	w.param("TTP", "0")
	w.paramStr("SPI", "")
	w.param("BFC", "0")
	w.param("SHT", "0")
	w.param("SHP", "0")
	w.param("SHD", "0")
	w.param("PRS", "0")
	w.param("NEBS", "0")
	w.param("ETB", "0")
	w.param("FXD", "0")
	w.param("FXDA", "0")
	w.param("KDT", "0")
	w.param("EML", "0")
	w.param("CKT", "0")
	w.param("ETG", "0")
	w.param("ETGT", "0.1")
	w.param("AJT", "0")
	w.param("ION", "0")
	w.param("LUBMNZ", "0")
	w.param("LPR", "1")
	w.param("LNG", "0")
	w.param("ZS", "0")
	w.param("ZE", "0")
	w.param("RDIN", "0")
	w.param("COPRES", "0")
	w.param("CRT", "0")
	w.endMacro()
}

func writeEndPath(w *writer) {
	w.beginMacro("ENDPATH")
	w.endMacro()
}

// writeDrill emits one BG macro per hole. The SPI parameter wants the
// lowercase spindle token (e.g. "t7"), while the block id uses the uppercase
// form.
func writeDrill(w *writer, pos layout.Position, depth float64, drillSpeed int) {
	w.beginMacro("BG")
	w.paramStr("LAY", "BG")
	w.paramStr("ID", "T"+itoa(pos.Spindle))
	w.param("SIDE", "0")
	w.paramStr("CRN", "2")
	w.paramNum("X", pos.X)
	w.paramNum("Y", pos.Y)
	w.param("Z", "0")
	w.param("AP", "0")
	w.param("MD", "0")
	w.paramNum("DP", depth)
	w.paramStr("TNM", "")
	w.paramNum("DIA", pos.Diameter)
	w.param("THR", "0")
	w.param("CKA", "3")
	w.param("AZ", "0")
	w.param("AR", "0")
	w.param("RTY", "5")
	w.paramInt("RSP", drillSpeed)
	w.param("IOS", "0")
	w.param("WSP", "0")
	w.param("DDS", "0")
	w.param("DSP", "0")
	w.param("RMD", "1")
	w.param("DQT", "0")
	w.param("ERDW", "0")
	w.param("DFW", "0")
	w.param("TOS", "1")
	w.param("VTR", "0")
	w.param("TTP", "0")
	w.paramStr("SPI", "t"+itoa(pos.Spindle))
	w.param("BFC", "0")
	w.param("PRS", "0")
	w.param("SHT", "0")
	w.param("SHP", "0")
	w.param("SHD", "0")
	w.param("COPRES", "0")
	w.param("AJT", "0")
	w.param("ION", "0")
	w.endMacro()
}

func geoID(id int) string { return "G" + itoa(id) + "." + itoa(id) }

func routgMacroID(id int) string { return "RG" + itoa(id) + "." + itoa(id) }
