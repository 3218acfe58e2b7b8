package blockdiag

// Default element styling, in points unless noted.
const (
	// DefaultFontSize is the box label size.
	DefaultFontSize = 9.0

	// DefaultPad is the box outline pad and corner radius in canvas units.
	DefaultPad = 0.1

	// DefaultLineWidth is the arrow and outline weight.
	DefaultLineWidth = 1.0

	// DefaultCaptionPos places captions halfway along their arrow.
	DefaultCaptionPos = 0.5

	// CaptionFontSize is the arrow caption size.
	CaptionFontSize = 8.0

	// TitleFontSize is the default title size.
	TitleFontSize = 14.0
)

// NewBox returns a box with the default font size and pad.
func NewBox(name string, x, y, w, h float64, label string) Box {
	return Box{
		Name:     name,
		X:        x,
		Y:        y,
		W:        w,
		H:        h,
		Label:    label,
		FontSize: DefaultFontSize,
		Pad:      DefaultPad,
	}
}

// NewArrow returns a filled-head arrow with its caption halfway along.
func NewArrow(from, to Point, caption string) Arrow {
	return Arrow{
		From:       from,
		To:         to,
		Caption:    caption,
		CaptionPos: DefaultCaptionPos,
		LineWidth:  DefaultLineWidth,
	}
}

// NPUArchitecture returns the layout of the dual-engine NPU diagram: a
// control row on top, the systolic and MAC compute cluster with
// post-processing in the middle, and the memory subsystem at the bottom.
//
// The coordinates are hand-tuned against the reference image on a 100x60
// canvas and are not derived from any rule.
func NPUArchitecture() Layout {
	return Layout{
		Name:   "npu_architecture",
		Bounds: R(0, 0, 100, 60),
		Boxes: []Box{
			// Control row.
			NewBox("host", 2, 50, 22, 8, "Host Interface\nAXI-Lite/APB\nJob Queue\nInterrupt Ctrl"),
			NewBox("control", 26, 50, 28, 8, "Control Unit\nDecoder\nScheduler\nEngine Selector\nTiler\nError Handler"),
			NewBox("debug", 56, 50, 20, 8, "Debug Unit\nPerf Counters\nTrace Buffers\nJTAG/Scan"),
			NewBox("interfaces", 78, 50, 20, 8, "Interfaces\nAXI Master (DRAM)\nAXI-Lite/APB (CPU)\nCoherency Optional"),

			// Compute cluster.
			NewBox("systolic", 30, 32, 20, 10, "Systolic Array Engine\nPE Array R x C\nIngress/Collector\nLocal Scheduler"),
			NewBox("mac", 52, 32, 20, 10, "MAC Array Engine\nSIMD PE Array\nMAC Ctrl\nInput Distributor\nOutput Accumulator"),
			NewBox("postproc", 40, 20, 28, 10, "PostProcessing\nVector Units\nActivation (ReLU/LUT/CORDIC)\nPooling\nQuantization\nPackager"),

			// Memory subsystem.
			NewBox("weight_buffer", 2, 2, 18, 10, "Weight Buffer\nBanked SRAMs\nPrefetch Ctrl"),
			NewBox("activation_buffer", 22, 2, 18, 10, "Activation Buffer\nPing-Pong SRAMs\nBank Conflict Resolver"),
			NewBox("psum_buffer", 42, 2, 18, 10, "PSUM Buffer\nAccumulate/Spill"),
			NewBox("agu", 62, 2, 12, 10, "AGU Cluster\nSystolic + SIMD"),
			NewBox("dma", 76, 2, 18, 10, "DMA Engine\nAXI Master\nRead/Write FSMs"),
		},
		Arrows: []Arrow{
			// Host and control into the compute cluster.
			NewArrow(Pt(13, 50), Pt(40, 42), "Job descriptor"),
			NewArrow(Pt(40, 50), Pt(40, 42), "Control commands"),
			NewArrow(Pt(26, 50), Pt(40, 42), "Engine cfg"),
			NewArrow(Pt(13, 50), Pt(13, 42), "Status/IRQ feedback"),

			// Compute to memory.
			NewArrow(Pt(40, 32), Pt(30, 12), "Weight fetch"),
			NewArrow(Pt(60, 32), Pt(40, 12), "Activation fetch"),
			NewArrow(Pt(52, 32), Pt(42, 12), "PSUM spill / accumulation"),
			NewArrow(Pt(54, 22), Pt(62, 12), "PostProc outputs → Memory writeback"),

			// Memory to compute.
			NewArrow(Pt(11, 12), Pt(35, 32), "Weights / tiles"),
			NewArrow(Pt(31, 12), Pt(55, 32), "Activations / tiles"),
			NewArrow(Pt(73, 12), Pt(52, 32), "AGU addr streams"),
			NewArrow(Pt(85, 12), Pt(60, 32), "DMA bursts / prefetch"),
		},
		Title: Title{
			Text:     "Detailed NPU Architecture (Dual Engines: Systolic + MAC)",
			At:       Pt(50, 58),
			FontSize: TitleFontSize,
			Bold:     true,
		},
	}
}
