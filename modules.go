package vlc

import "unsafe"

// ModuleDescription describes one libvlc module (filter, interface, ...).
type ModuleDescription struct {
	Name      string
	Shortname string
	Longname  string
	Help      string
}

// native libvlc_module_description_t: four C strings and a next pointer.
type cModuleDescription struct {
	name      uintptr
	shortname uintptr
	longname  uintptr
	help      uintptr
	next      uintptr
}

// moduleDescriptionList copies a native linked list into Go values and
// releases the native list, the same pattern the ctypes bindings use for
// track and module description lists.
func moduleDescriptionList(head uintptr) []ModuleDescription {
	var list []ModuleDescription
	for p := head; p != 0; {
		d := (*cModuleDescription)(unsafe.Pointer(p))
		list = append(list, ModuleDescription{
			Name:      goString(d.name),
			Shortname: goString(d.shortname),
			Longname:  goString(d.longname),
			Help:      goString(d.help),
		})
		p = d.next
	}
	if head != 0 && libvlc.moduleDescriptionListRelease != nil {
		libvlc.moduleDescriptionListRelease(head)
	}
	return list
}
