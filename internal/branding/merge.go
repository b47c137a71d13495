package branding

// ApplyDefaults merges a possibly partial document over the factory table
// and returns a complete copy. This is the single normalization pass: it
// runs once at the load boundary so consumers never carry their own
// fallbacks. The input is not mutated.
func ApplyDefaults(in *Document) *Document {
	out := DefaultDocument()
	if in == nil {
		return out
	}
	mergeColors(out.Colors, in.Colors)
	mergeUI(out.UI, in.UI)
	mergeLogin(out.Login, in.Login)
	mergePWA(out.PWA, in.PWA)
	mergeSystemPages(out.SystemPages, in.SystemPages)
	mergeEmail(out.Email, in.Email)
	mergeSounds(out.Sounds, in.Sounds)
	mergeSEO(out.SEO, in.SEO)
	mergeFooter(out.Footer, in.Footer)
	return out
}

func mergeColors(dst, src *Colors) {
	if src == nil {
		return
	}
	mergeColorSet(&dst.ColorSet, &src.ColorSet)
	if src.SelectedProfile != "" {
		dst.SelectedProfile = src.SelectedProfile
	}
	// Stored profiles win over built-ins of the same name; built-ins that
	// the document never touched stay available.
	for name, set := range src.Profiles {
		base, ok := dst.Profiles[name]
		if !ok {
			base = ColorSet{}
		}
		mergeColorSet(&base, &set)
		dst.Profiles[name] = base
	}

	// Flat fields are the active profile as it was last rendered. Older
	// documents stored only the flat set, so fold it into the selected
	// profile; projection at normalize time then loses nothing.
	if sel := dst.SelectedProfile; sel != "" {
		base, ok := dst.Profiles[sel]
		if !ok {
			base = dst.ColorSet
		}
		mergeColorSet(&base, &src.ColorSet)
		dst.Profiles[sel] = base
	}
}

func mergeColorSet(dst, src *ColorSet) {
	fill := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	fill(&dst.Primary, src.Primary)
	fill(&dst.Background, src.Background)
	fill(&dst.Sidebar, src.Sidebar)
	fill(&dst.SidebarSubmenu, src.SidebarSubmenu)
	fill(&dst.Border, src.Border)
	fill(&dst.Card, src.Card)
	fill(&dst.Hover, src.Hover)
	fill(&dst.HeaderBackground, src.HeaderBackground)
	fill(&dst.HeaderIcon, src.HeaderIcon)
	fill(&dst.Success, src.Success)
	fill(&dst.Warning, src.Warning)
	fill(&dst.Error, src.Error)
	fill(&dst.Info, src.Info)
	fill(&dst.TextPrimary, src.TextPrimary)
	fill(&dst.TextSecondary, src.TextSecondary)
	fill(&dst.BorderStrong, src.BorderStrong)
	fill(&dst.BorderSubtle, src.BorderSubtle)
	fill(&dst.ScrollbarThumb, src.ScrollbarThumb)
}

func mergeUI(dst, src *UI) {
	if src == nil {
		return
	}
	if src.Radius != nil {
		dst.Radius = cloneFloat(src.Radius)
	}
	if src.FontFamily != "" {
		dst.FontFamily = src.FontFamily
	}
	if src.HeadingFontFamily != "" {
		dst.HeadingFontFamily = src.HeadingFontFamily
	}
	if src.GlassBlur != nil {
		dst.GlassBlur = cloneFloat(src.GlassBlur)
	}
	if src.GlassOpacity != nil {
		dst.GlassOpacity = cloneFloat(src.GlassOpacity)
	}
	for k, v := range src.FontSizes {
		if v != "" {
			dst.FontSizes[k] = v
		}
	}
	if src.EffectStyle != "" {
		dst.EffectStyle = src.EffectStyle
	}
	if src.LoaderStyle != "" {
		dst.LoaderStyle = src.LoaderStyle
	}
}

func mergeLogin(dst, src *Login) {
	if src == nil {
		return
	}
	if src.Mode != "" {
		dst.Mode = src.Mode
	}
	if src.BackgroundImage != "" {
		dst.BackgroundImage = src.BackgroundImage
	}
	if src.BackgroundColor != "" {
		dst.BackgroundColor = src.BackgroundColor
	}
	if src.GradientFrom != "" {
		dst.GradientFrom = src.GradientFrom
	}
	if src.GradientTo != "" {
		dst.GradientTo = src.GradientTo
	}
	if src.OverlayColor != "" {
		dst.OverlayColor = src.OverlayColor
	}
	if src.OverlayOpacity != nil {
		dst.OverlayOpacity = cloneFloat(src.OverlayOpacity)
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Message != "" {
		dst.Message = src.Message
	}
	if src.LogoURL != "" {
		dst.LogoURL = src.LogoURL
	}
	if src.Layout != "" {
		dst.Layout = src.Layout
	}
}

func mergePWA(dst, src *PWA) {
	if src == nil {
		return
	}
	if src.AppleTouchIcon != "" {
		dst.AppleTouchIcon = src.AppleTouchIcon
	}
	if src.Android192 != "" {
		dst.Android192 = src.Android192
	}
	if src.Android512 != "" {
		dst.Android512 = src.Android512
	}
}

func mergeSystemPages(dst, src *SystemPages) {
	if src == nil {
		return
	}
	if src.Maintenance != nil {
		dst.Maintenance = cloneBool(src.Maintenance)
	}
	if src.MaintenanceMessage != "" {
		dst.MaintenanceMessage = src.MaintenanceMessage
	}
	if src.MaintenanceETA != "" {
		dst.MaintenanceETA = src.MaintenanceETA
	}
	if src.NotFoundImage != "" {
		dst.NotFoundImage = src.NotFoundImage
	}
	if src.NotFoundTitle != "" {
		dst.NotFoundTitle = src.NotFoundTitle
	}
}

func mergeEmail(dst, src *Email) {
	if src == nil {
		return
	}
	if src.HeaderColor != "" {
		dst.HeaderColor = src.HeaderColor
	}
	if src.CTAColor != "" {
		dst.CTAColor = src.CTAColor
	}
	if src.FooterText != "" {
		dst.FooterText = src.FooterText
	}
}

func mergeSounds(dst, src *Sounds) {
	if src == nil {
		return
	}
	if src.Enabled != nil {
		dst.Enabled = cloneBool(src.Enabled)
	}
	if src.Volume != nil {
		dst.Volume = cloneFloat(src.Volume)
	}
}

func mergeSEO(dst, src *SEO) {
	if src == nil {
		return
	}
	if src.TitleTemplate != "" {
		dst.TitleTemplate = src.TitleTemplate
	}
	if src.Description != "" {
		dst.Description = src.Description
	}
	if src.OGImage != "" {
		dst.OGImage = src.OGImage
	}
}

func mergeFooter(dst, src *Footer) {
	if src == nil {
		return
	}
	if src.Copyright != "" {
		dst.Copyright = src.Copyright
	}
	if src.ShowLegalLinks != nil {
		dst.ShowLegalLinks = cloneBool(src.ShowLegalLinks)
	}
}
