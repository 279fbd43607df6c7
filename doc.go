/*
Package viewports bridges the multi-viewport feature of an immediate-mode GUI
library to native GLFW windows that share one OpenGL context.

# Overview

An immediate-mode GUI rebuilds its UI every frame. With viewports enabled the
library may decide that a panel dragged outside the main window deserves its
own OS window. It then calls back into a PlatformIO table to create, show,
move and destroy those windows. This package provides that table
(WindowsManager) and a Controller that runs the frame across every window:

  - Context is the part of the GUI library the Controller drives.
  - WindowSystem and NativeWindow abstract the windowing layer;
    backend/desktop implements them with GLFW.
  - Renderer draws DrawData into one window; backend/opengl implements it
    with OpenGL 3.3 core, backend/opengl/gogl binds it to go-gl.

The main viewport is always bound to the application's main window. Every
secondary viewport gets its own window, GL context, vertex array and
buffers, and borrows the main renderer's font texture and shader program.

# Quick Start

	glfw.Init()
	sys := desktop.New()
	native, _ := sys.CreateWindow(viewports.WindowConfig{
	    Title: "app", Size: viewports.Vec2{X: 1600, Y: 900},
	    Decorated: true, Visible: true, GLVersion: [2]int{3, 3},
	})
	native.MakeContextCurrent()

	fns, _ := gogl.Init()
	renderer, _ := opengl.NewRenderer(fns, ui.FontAtlas())

	win := viewports.WrapWindow(native, viewports.WindowHooks{
	    Render: func(float32) { renderer.Begin(native, clearColor) },
	})
	ctrl, _ := viewports.NewController(ui, sys, win, renderer)
	defer ctrl.Dispose()

	for !native.(*desktop.Window).ShouldClose() {
	    if err := ctrl.Render(dt); err != nil {
	        return err
	    }
	}

# Frame Order

Controller.Render performs, in order:

 1. Context.UpdatePlatformWindows, which may create or destroy windows.
 2. OnUpdate for every window, which processes its OS events.
 3. Input merge: mouse buttons and keys are OR-ed across windows, key
    transitions are forwarded as events, queued characters and wheel
    movement are drained into IO.
 4. Display size, framebuffer scale, delta time and monitors.
 5. Context.NewFrame, OnDraw for every window, Context.Render.
 6. For every window: make its context current, OnRender, draw its
    viewport's DrawData, swap buffers.

The main window's context is current again when Render returns.

# Window Handles

A viewport refers to its native window through a WindowHandle, a slot
index plus a generation counter. Destroying a window bumps the generation,
so events delivered late by the OS for a destroyed window resolve to
nothing instead of a dangling viewport.

# Input Across Windows

Dragging a panel out of the main window creates a new window while the
left button is still held in the old one. The new window never sees the
press, so it starts with a synthetic left-button-down that the next real
event for that button clears.

# Threading

Everything runs on the thread that owns the GL contexts; lock it with
runtime.LockOSThread before calling glfw.Init. No type in this module is
safe for concurrent use.

# Logging

The Controller logs window creation and destruction at Debug level through
log/slog. SetVerbose enables those messages on the default logger;
WithLogger substitutes another one.
*/
package viewports
