package taxon

import (
	"fmt"
	"log"
	"unicode"
	"unicode/utf8"
)

// buildDescription dispatches to the category-specific descriptor. A panic
// while extracting one object's metadata degrades that single item to a stub
// description; it never aborts the batch.
func (e *Engine) buildDescription(name string, obj Object, cat Category) (d *Description) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("warning: describing %s: %v", name, r)
			d = &Description{
				Name:     name,
				Category: cat,
				Note:     fmt.Sprintf("inspection failed: %v", r),
			}
		}
	}()

	switch cat {
	case CategoryFunction:
		return e.describeFunction(name, obj)
	case CategoryClass, CategoryException:
		return e.describeClass(name, obj, cat)
	case CategoryConstant:
		return e.describeConstant(name, obj)
	default:
		return e.describeOther(name, obj)
	}
}

func (e *Engine) describeFunction(name string, obj Object) *Description {
	d := &Description{
		Name:     name,
		Category: CategoryFunction,
		TypeName: obj.TypeName(),
		Module:   e.moduleOf(obj),
		Callable: true,
		Doc:      excerpt(obj.Doc(), e.maxDocLines),
	}
	if m, ok := ProtocolMethodFor(name); ok {
		d.ProtocolMethod = m
	}
	return d
}

func (e *Engine) describeClass(name string, obj Object, cat Category) *Description {
	public, special := partitionAttributes(obj.AttributeNames())
	return &Description{
		Name:               name,
		Category:           cat,
		TypeName:           obj.TypeName(),
		Module:             e.moduleOf(obj),
		Callable:           obj.IsCallable(),
		Doc:                excerpt(obj.Doc(), e.maxDocLines),
		Supertypes:         obj.Supertypes(),
		PublicMethods:      capList(public, e.methodListCap),
		PublicMethodCount:  len(public),
		SpecialMethods:     capList(special, e.methodListCap),
		SpecialMethodCount: len(special),
	}
}

func (e *Engine) describeConstant(name string, obj Object) *Description {
	note, _ := SentinelNote(name)
	return &Description{
		Name:     name,
		Category: CategoryConstant,
		TypeName: obj.TypeName(),
		Module:   e.moduleOf(obj),
		Callable: obj.IsCallable(),
		Doc:      excerpt(obj.Doc(), e.maxDocLines),
		Repr:     obj.Repr(),
		Note:     note,
	}
}

func (e *Engine) describeOther(name string, obj Object) *Description {
	return &Description{
		Name:     name,
		Category: CategoryOther,
		TypeName: obj.TypeName(),
		Module:   e.moduleOf(obj),
		Callable: obj.IsCallable(),
		Doc:      excerpt(obj.Doc(), e.maxDocLines),
		Repr:     obj.Repr(),
	}
}

// moduleOf returns the object's declared origin module, defaulting to the
// inspected namespace's own module name when undeclared.
func (e *Engine) moduleOf(obj Object) string {
	if m := obj.Module(); m != "" {
		return m
	}
	return e.ns.Name()
}

// partitionAttributes splits a type's own attribute names into public and
// special (protocol) groups, discarding unexported names. The two returned
// groups plus the discarded unexported set partition the input exactly, with
// no name in more than one group. Input order is preserved, so sorted input
// yields sorted groups.
func partitionAttributes(names []string) (public, special []string) {
	for _, name := range names {
		if !exported(name) {
			continue
		}
		if protocolMethods[name] {
			special = append(special, name)
		} else {
			public = append(public, name)
		}
	}
	return public, special
}

func exported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// capList bounds a display list to max entries. The true totals live in the
// count fields; a non-positive max disables the cap.
func capList(names []string, max int) []string {
	if max > 0 && len(names) > max {
		return names[:max:max]
	}
	return names
}
