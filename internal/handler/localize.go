package handler

import (
	"langart/internal/locale"
	"langart/internal/models"
)

// The resolve* helpers flatten localized fields to the requested language
// for public reads. The flattened copies marshal as plain strings, so the
// JSON shape the public site consumes never carries per-language maps.

func resolveText(t locale.Text, lang locale.Lang) locale.Text {
	return locale.PlainText(t.Resolve(lang))
}

func resolveList(l locale.StringList, lang locale.Lang) locale.StringList {
	return locale.PlainList(l.Resolve(lang))
}

func resolveCourse(course models.Course, lang locale.Lang) models.Course {
	course.Title = resolveText(course.Title, lang)
	course.ShortTag = resolveText(course.ShortTag, lang)
	course.Certificates = resolveText(course.Certificates, lang)
	course.Ages = resolveText(course.Ages, lang)
	course.Overview = resolveText(course.Overview, lang)
	course.WhatYouWillLearn = resolveList(course.WhatYouWillLearn, lang)
	return course
}

func resolveCourses(courses []models.Course, lang locale.Lang) []models.Course {
	resolved := make([]models.Course, len(courses))
	for i, course := range courses {
		resolved[i] = resolveCourse(course, lang)
	}
	return resolved
}

func resolveInstructor(instructor models.Instructor, lang locale.Lang) models.Instructor {
	instructor.Name = resolveText(instructor.Name, lang)
	instructor.About = resolveText(instructor.About, lang)
	return instructor
}

func resolveInstructors(instructors []models.Instructor, lang locale.Lang) []models.Instructor {
	resolved := make([]models.Instructor, len(instructors))
	for i, instructor := range instructors {
		resolved[i] = resolveInstructor(instructor, lang)
	}
	return resolved
}

func resolveTestimonial(t models.Testimonial, lang locale.Lang) models.Testimonial {
	t.Name = resolveText(t.Name, lang)
	t.Role = resolveText(t.Role, lang)
	t.Title = resolveText(t.Title, lang)
	t.Content = resolveText(t.Content, lang)
	return t
}

func resolveTestimonials(testimonials []models.Testimonial, lang locale.Lang) []models.Testimonial {
	resolved := make([]models.Testimonial, len(testimonials))
	for i, t := range testimonials {
		resolved[i] = resolveTestimonial(t, lang)
	}
	return resolved
}

func resolvePricingPlan(plan models.PricingPlan, lang locale.Lang) models.PricingPlan {
	plan.Title = resolveText(plan.Title, lang)
	plan.Ages = resolveText(plan.Ages, lang)
	plan.Features = resolveList(plan.Features, lang)
	return plan
}

func resolvePricingPlans(plans []models.PricingPlan, lang locale.Lang) []models.PricingPlan {
	resolved := make([]models.PricingPlan, len(plans))
	for i, plan := range plans {
		resolved[i] = resolvePricingPlan(plan, lang)
	}
	return resolved
}
